// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package menu

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store call metrics, labeled by operation (insert, list, get, update, delete)
	storeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_store_operations_total",
			Help: "Total number of menu store operations by result",
		},
		[]string{"operation", "result"},
	)

	storeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menu_store_operation_duration_seconds",
			Help:    "Duration of menu store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	validationRejects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_validation_rejects_total",
			Help: "Total number of menu requests rejected by validation before reaching the store",
		},
		[]string{"operation"},
	)
)

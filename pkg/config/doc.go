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

// Package config loads the menu service configuration from the process
// environment, optionally seeded from a .env file in the working directory.
//
// Recognized variables:
//   - PORT: HTTP listen port (default: 5000)
//   - STORE_BACKEND: mongo or memory (default: mongo)
//   - MONGO_URI: MongoDB connection string (required for the mongo backend)
//   - MONGO_DATABASE: database name (default: menu)
//   - MONGO_COLLECTION: collection name (default: menuitems)
//   - MENU_NULL_POLICY: ignore or clear, how explicit nulls in updates are treated (default: ignore)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//
// Values already present in the environment take precedence over .env entries.
package config

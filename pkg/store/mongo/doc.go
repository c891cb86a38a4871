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

// Package mongo implements menu.Store on MongoDB using the official v2 driver.
//
// Items live in a single collection. The document _id is an ObjectID and is
// exposed to the API as its hex string. Ids that are not valid ObjectID hex
// strings cannot match a document and are reported as not found.
//
// Usage:
//
//	st, err := mongo.Connect(ctx, mongo.Config{
//	    URI:        "mongodb://localhost:27017",
//	    Database:   "menu",
//	    Collection: "menuitems",
//	})
//	if err != nil {
//	    return err
//	}
//	defer st.Close(context.Background())
package mongo

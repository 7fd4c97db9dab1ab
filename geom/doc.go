// Copyright 2016 Google Inc. All rights reserved.
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

// Package geom implements the computational-geometry core of a planar
// vector geometry library under the OGC Simple Features model: robust
// orientation and intersection predicates, point-in-ring/point-locator
// classification, convex hull, centroid accumulation, and the
// offset-curve/buffer construction pipeline built on top of a small
// arena-indexed planar graph.
//
// The package intentionally does not parse or serialize any wire format
// (WKT/WKB/GeoJSON), does not implement topology validation, and does not
// provide spatial indexing beyond what the buffer pipeline needs
// internally. Those concerns belong to a consumer built on top of this
// package.
package geom

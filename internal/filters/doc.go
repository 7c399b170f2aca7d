// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a flattened config document.
//
// Filters are specified as key-operator-target expressions and can be
// combined using a configurable delimiter (default: comma, override with
// CFGSTORE_FILTER_DELIM). A row is kept when at least one filter selects its
// key and it passes every filter that does; filters naming other keys are
// ignored for that row, so "db.port>1024,db.host=h" keeps both rows.
//
// Operators include:
//
//   - = : exact match (supports negation with !=)
//   - ~ : case-insensitive match (supports negation with !~)
//   - ^ : prefix match (supports negation with !^)
//   - < : less than (numeric when both sides are numbers)
//   - > : greater than (numeric when both sides are numbers)
//   - @ : contains substring (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "db" : rows at or below the db key
//   - "db.host=localhost" : the db.host row when it equals "localhost"
//   - "*@internal" : any row whose value contains "internal"
//   - "db.port>1024" : the db.port row when its value exceeds 1024
//
// A key selects itself and everything nested below it, so "db" selects
// "db.host" and "db[0]". The key "*" selects every row.
package filters

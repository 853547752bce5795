// Package harness runs conversion conformance scenarios.
//
// A scenario lists epoch instants together with the civil readings
// they must decompose to. The harness feeds each instant through an
// engine built from the scenario's zone declaration, derives every
// reading from that engine, and checks the stated expectations field
// by field.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: zone_fixed_east
//	description: "An eastern fixed zone crosses midnight before UTC"
//	zone:
//	  fixed: 19800
//	preset: full
//	cases:
//	  - epoch: 1728933069
//	    utc: "2024-10-14 19:11:09"
//	    weekday: Monday
//	    iso_week: 2024-W42
//	    local: "2024-10-15 00:41:09"
//	    local_weekday: Tuesday
//	    offset: "+05:30"
//
// Expectation fields are optional; a case states only the readings it
// pins down. Every value in a report derives from the engine, never
// from the scenario, so golden snapshots capture actual conversion
// behavior rather than echoing the expectations back.
//
// # Zones
//
// A scenario declares exactly one zone, or none for UTC:
//
//   - fixed: a constant displacement east of UTC in seconds
//   - seasonal: standard and daylight displacements with an optional
//     southern flag that flips the daylight months
//
// # Deterministic Runs
//
// Scenarios never read the host clock or environment: instants come
// from the case list and zones from the scenario declaration, so runs
// are reproducible and golden comparison is byte-stable.
package harness

// Package vapi provides declarative version and capability metadata for
// evolving plugin interfaces.
//
// An interface author marks members (methods and properties) as required
// since a given API version, optionally gated on named capabilities, and
// marks other members as providing a capability since a given version. A
// plugin validator can then ask, for a target API version and the set of
// capabilities a plugin claims, which members are mandatory.
//
// Members are wrapped in explicit carrier types (Method, RequiredProperty,
// ProvidedProperty) rather than tagged in place, and interface authors can
// collect them in an Interface descriptor. Annotation supports two calling
// conventions: bare helpers that apply defaults directly to a member
// (MarkRequired, MarkProvided and friends), and configured factories
// (Require, Provide and friends) that validate options and return a
// reusable annotator.
//
// The package attaches metadata only. Discovering members, aggregating
// provided capabilities and enforcing requirements are the consumer's job.
package vapi

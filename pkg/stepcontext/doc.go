// Package stepcontext models the host sequencer's view of one test step.
//
// A Context carries the active site numbers and the pin set of the step
// configuration. Code modules use it to pre-validate sitedata containers,
// publish results and pass data to later steps through a shared Store.
//
// # Configuration
//
// Step configurations are YAML documents:
//
//	name: continuity
//	sites: [0, 1, 2, 3]
//	pins:
//	  dut: [VCC1, VCC2, VDET]
//	  system: [SystemSupply]
//
// # Publishing
//
// PublishResults flattens a PinSiteData site-major: for every active site,
// in configuration order, one result event per pin. Results go to the
// configured log.Logger.
//
// # Shared Data
//
// ShareSiteData and SharePinSiteData flatten a container over the active
// sites and store it CBOR-encoded under a string identifier.
// GetSharedSiteData and GetSharedPinSiteData rebuild it for the active
// sites of the retrieving context.
package stepcontext

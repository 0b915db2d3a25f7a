// Package extraction reads the response envelope of the external extraction
// service and turns it into a template. Responses carry either a
// hierarchical structure under result.hierarchical_data or a flat field list
// under result.fields.
package extraction

// Package document loads panel documents: YAML files holding data frames
// and the field configuration (defaults plus override rules) to resolve
// against them.
//
// A document looks like:
//
//	version: "1"
//	options:
//	  autoMinMax: true
//	frames:
//	  - name: A
//	    refId: QA
//	    fields:
//	      - name: time
//	        type: time
//	        values: ["2024-01-02T03:04:05Z", "2024-01-02T03:05:05Z"]
//	      - name: cpu
//	        config: {unit: percent}
//	        values: [12.5, 40]
//	fieldConfig:
//	  defaults:
//	    decimals: 1
//	  overrides:
//	    - matcher: {id: byName, options: cpu}
//	      properties:
//	        - {id: max, value: 50}
//
// Validate reports structural problems (unequal field lengths, unknown
// matcher or property ids) that resolution itself silently tolerates.
package document

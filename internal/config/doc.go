// Package config parses the argument list of a bitenum directive.
//
// A directive is a comment line in the doc comment of a type declaration:
//
//	//bitenum:enum u5, exhaustive: conditional
//	type Opcode uint8
//
// Grammar:
//
//	args       = width-spec [ "," "exhaustive" ":" value ]
//	width-spec = "u" decimal          // 1..64
//	value      = "true" | "false" | "conditional"
//
// The arguments may be given in any order. A missing exhaustive value means
// "false".
package config

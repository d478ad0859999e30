// Package schema provides the principal operating system schematics for all
// other packages. It provides thin implementations wrapping the (Unix-based)
// operating system functions used when reading declared structures, schemas
// and the files they describe. The package serves as a foundational layer for
// filesystem interactions throughout the codebase, allowing the consumers to
// depend on narrow interfaces that can be mocked in tests.
package schema

// Package driver orchestrates the engine over whole runs: it owns the
// scan-before-gate ordering per unit, the optional parallelism across
// units, the msgpack scan cache, and the decoding of host hand-over
// formats (unit fixtures and JSON-lines diagnostic streams).
//
// The engine itself stays single-threaded per unit; ProcessUnits fans
// units out over an errgroup while each file keeps exactly one writer.
package driver

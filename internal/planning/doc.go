// Package planning holds the pure day-planning algorithms: workload analysis,
// priority-tiered deferral, time-slot assignment, delay shifting and
// recurrence materialization. Nothing here performs I/O or mutates its input.
package planning

// Package driver attaches second-order dynamics to entities.
//
// A driver owns an ordered [secondorder.Bank] with one filter per channel,
// reads a target entity every tick and writes the filtered result to the
// entity it drives:
//   - [Position] filters a 3D position with three channels (x, y, z) and
//     stops integrating once it has settled on the target.
//   - [Orientation] filters a rotation with four quaternion channels, keeps
//     the target on the shortest path and optionally leans the result in the
//     direction of travel reported by a [Position] driver.
//
// The host frame loop supplies elapsed time. Each driver is configured for one
// [UpdateMode]; the Update, FixedUpdate and LateUpdate hooks run the driver
// only when they match that mode and the elapsed time is positive. Execute can
// also be called directly; it must never receive a zero tick.
//
// Drivers are not safe for concurrent use. Independent drivers may be ticked
// in parallel with a [Scheduler].
package driver

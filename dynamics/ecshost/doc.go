// Package ecshost runs motion drivers inside a donburi ECS world.
//
// Entities carry a Transform component. AttachPosition and AttachOrientation
// add driver components that move the entity toward the Transform of the
// entity named by its Target component. A System ticks all drivers of one
// cadence, position drivers first so orientation tilt sees fresh velocity.
//
// Drivers never hold copies of transforms: EntityTransform looks the
// component up on every access, so a removed target simply idles its
// followers.
package ecshost

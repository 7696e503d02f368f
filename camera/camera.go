// Package camera provides a spring-smoothed orbit camera around the
// flower structure.
package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Orbit holds yaw/pitch/distance targets and their spring-smoothed
// current values. Pan is deliberately absent: the camera always looks
// at the structure's center.
type Orbit struct {
	yawTarget   float64
	pitchTarget float64
	distTarget  float64

	yaw, yawVel     float64
	pitch, pitchVel float64
	dist, distVel   float64

	spring harmonica.Spring

	TargetX, TargetY, TargetZ float64
	MinDist, MaxDist          float64

	homeYaw, homePitch, homeDist float64
}

// pitch limits keep the camera off the poles.
const (
	minPitch = -1.35
	maxPitch = 1.35
)

// New creates an orbit camera at the given distance looking at
// (0, targetY, 0). frequency and damping tune the settle springs.
func New(dist, minDist, maxDist, targetY, frequency, damping float64) *Orbit {
	o := &Orbit{
		yawTarget:   0.6,
		pitchTarget: 0.25,
		distTarget:  dist,
		yaw:         0.6,
		pitch:       0.25,
		dist:        dist,
		spring:      harmonica.NewSpring(harmonica.FPS(60), frequency, damping),
		TargetY:     targetY,
		MinDist:     minDist,
		MaxDist:     maxDist,
		homeYaw:     0.6,
		homePitch:   0.25,
		homeDist:    dist,
	}
	return o
}

// Rotate adjusts the orbit targets by the given deltas (radians).
func (o *Orbit) Rotate(dYaw, dPitch float64) {
	o.yawTarget += dYaw
	o.pitchTarget += dPitch
	if o.pitchTarget < minPitch {
		o.pitchTarget = minPitch
	}
	if o.pitchTarget > maxPitch {
		o.pitchTarget = maxPitch
	}
}

// Dolly scales the distance target; factor > 1 moves away.
func (o *Orbit) Dolly(factor float64) {
	o.distTarget *= factor
	if o.distTarget < o.MinDist {
		o.distTarget = o.MinDist
	}
	if o.distTarget > o.MaxDist {
		o.distTarget = o.MaxDist
	}
}

// Reset springs back to the home view.
func (o *Orbit) Reset() {
	o.yawTarget = o.homeYaw
	o.pitchTarget = o.homePitch
	o.distTarget = o.homeDist
}

// Update advances the springs one frame toward the targets.
func (o *Orbit) Update() {
	o.yaw, o.yawVel = o.spring.Update(o.yaw, o.yawVel, o.yawTarget)
	o.pitch, o.pitchVel = o.spring.Update(o.pitch, o.pitchVel, o.pitchTarget)
	o.dist, o.distVel = o.spring.Update(o.dist, o.distVel, o.distTarget)
}

// Eye returns the current camera position in world space.
func (o *Orbit) Eye() (x, y, z float64) {
	cp := math.Cos(o.pitch)
	x = o.TargetX + o.dist*cp*math.Cos(o.yaw)
	y = o.TargetY + o.dist*math.Sin(o.pitch)
	z = o.TargetZ + o.dist*cp*math.Sin(o.yaw)
	return x, y, z
}

// Distance returns the current (smoothed) orbit distance.
func (o *Orbit) Distance() float64 {
	return o.dist
}

// ProjectNDC maps a [-1,1] cursor onto the vertical plane through the
// orbit target, using the camera's right and up vectors. span sets the
// world extent mapped to one NDC unit. This is how the distortion
// cursor acquires a 3D position.
func (o *Orbit) ProjectNDC(nx, ny, span float64) (x, y, z float64) {
	ex, ey, ez := o.Eye()

	// Forward = target - eye, normalized.
	fx, fy, fz := o.TargetX-ex, o.TargetY-ey, o.TargetZ-ez
	fl := math.Sqrt(fx*fx + fy*fy + fz*fz)
	if fl == 0 {
		return o.TargetX, o.TargetY, o.TargetZ
	}
	fx, fy, fz = fx/fl, fy/fl, fz/fl

	// Right = forward x worldUp, normalized.
	rx, ry, rz := -fz, 0.0, fx
	rl := math.Sqrt(rx*rx + ry*ry + rz*rz)
	if rl == 0 {
		return o.TargetX, o.TargetY, o.TargetZ
	}
	rx, ry, rz = rx/rl, ry/rl, rz/rl

	// Up = right x forward.
	ux := ry*fz - rz*fy
	uy := rz*fx - rx*fz
	uz := rx*fy - ry*fx

	x = o.TargetX + (rx*nx+ux*ny)*span
	y = o.TargetY + (ry*nx+uy*ny)*span
	z = o.TargetZ + (rz*nx+uz*ny)*span
	return x, y, z
}

package math3d

import (
	"fmt"

	"github.com/timonso/ik/utils"
)

// EulerAngles are stored in radians. The skeleton space is Y-up, so heading
// turns around Y, pitch around X, and bank around Z.
type EulerAngles struct {
	Heading float64 // y
	Pitch   float64 // x
	Bank    float64 // z
}

type rotation int

const (
	RotationHeading rotation = iota
	RotationPitch   rotation = iota
	RotationBank    rotation = iota
)

var (
	IdentityEulerAngles = EulerAngles{}
)

func MakeSingularEulerAngle(rot rotation, angle float64) EulerAngles {
	ea := EulerAngles{}

	switch rot {
	case RotationHeading:
		ea.Heading = utils.Rad(angle)

	case RotationPitch:
		ea.Pitch = utils.Rad(angle)

	case RotationBank:
		ea.Bank = utils.Rad(angle)

	default:
		panic("invalid rotation")
	}

	return ea
}

// Euler returns the angles given in degrees.
func Euler(h float64, p float64, b float64) EulerAngles {
	return EulerAngles{utils.Rad(h), utils.Rad(p), utils.Rad(b)}
}

// Quaternion returns the rotation which applies bank, then pitch, then
// heading.
func (ea EulerAngles) Quaternion() Quaternion {
	h := AxisAngle(Vector3{Y: 1}, ea.Heading)
	p := AxisAngle(Vector3{X: 1}, ea.Pitch)
	b := AxisAngle(Vector3{Z: 1}, ea.Bank)
	return h.Multiply(p).Multiply(b)
}

func (ea EulerAngles) Add(eaa EulerAngles) EulerAngles {
	return EulerAngles{
		ea.Heading + eaa.Heading,
		ea.Pitch + eaa.Pitch,
		ea.Bank + eaa.Bank,
	}
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{h=%+.2f° p=%+.2f° b=%+.2f°}", utils.Deg(ea.Heading), utils.Deg(ea.Pitch), utils.Deg(ea.Bank))
}

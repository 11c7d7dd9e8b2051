package hog

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"go.viam.com/hogview/utils"
)

const (
	halfTurn = math.Pi
	fullTurn = 2 * math.Pi
)

// Cell is a circular orientation histogram. Each pixel added votes its full weight into the
// single bin containing its angle. Masses only ever grow.
type Cell struct {
	masses     []float64
	ignoreSign bool
	domain     float64
}

// NewCell returns an empty histogram of numBins bins. With ignoreSign the bins cover
// [0, pi), otherwise [0, 2pi).
func NewCell(numBins int, ignoreSign bool) (*Cell, error) {
	if numBins < 1 {
		return nil, utils.NewInvalidConfigError("bin count must be at least 1, got %d", numBins)
	}
	return &Cell{
		masses:     make([]float64, numBins),
		ignoreSign: ignoreSign,
		domain:     domainWidth(ignoreSign),
	}, nil
}

// NumBins returns the fixed number of bins.
func (c *Cell) NumBins() int {
	return len(c.masses)
}

// IgnoreSign reports whether opposite directions share bins.
func (c *Cell) IgnoreSign() bool {
	return c.ignoreSign
}

// DomainWidth is pi for unsigned cells and 2pi for signed ones.
func (c *Cell) DomainWidth() float64 {
	return c.domain
}

// normalize maps angle into [0, domain).
func (c *Cell) normalize(angle float64) float64 {
	norm := math.Mod(angle, c.domain)
	if norm < 0 {
		norm += c.domain
	}
	// -tiny + domain rounds to domain
	if norm >= c.domain {
		norm = 0
	}
	return norm
}

// BinFor returns the bin an angle in radians falls into.
func (c *Cell) BinFor(angle float64) int {
	n := len(c.masses)
	return int(math.Floor(c.normalize(angle)/c.domain*float64(n))) % n
}

// AddPixel adds weight to the bin containing angle. Votes with a non-finite angle or a
// weight that is not finite and strictly positive are dropped.
//
// Angles are reduced exactly, so in an unsigned cell theta and theta+pi share a bin
// whenever theta+pi is computed without rounding. Within an ulp of the domain edge the
// float sum can round onto a multiple of the domain, which lands in bin 0 while theta
// itself lands in the last bin.
func (c *Cell) AddPixel(angle, weight float64) {
	if !utils.IsFinite(angle) || !utils.IsFinite(weight) || weight <= 0 {
		return
	}
	c.masses[c.BinFor(angle)] += weight
}

func (c *Cell) checkBin(i int) error {
	if i < 0 || i >= len(c.masses) {
		return utils.NewIndexOutOfRangeError("bin", i, len(c.masses))
	}
	return nil
}

// Bin returns the raw accumulated mass of bin i.
func (c *Cell) Bin(i int) (float64, error) {
	if err := c.checkBin(i); err != nil {
		return 0, err
	}
	return c.masses[i], nil
}

// BinAngle returns the center angle of bin i, (i + 0.5) * domain / numBins.
func (c *Cell) BinAngle(i int) (float64, error) {
	if err := c.checkBin(i); err != nil {
		return 0, err
	}
	return c.binAngle(i), nil
}

func (c *Cell) binAngle(i int) float64 {
	return (float64(i) + 0.5) * c.domain / float64(len(c.masses))
}

// BinAngles returns the center angle of every bin.
func (c *Cell) BinAngles() []float64 {
	angles := make([]float64, len(c.masses))
	for i := range angles {
		angles[i] = c.binAngle(i)
	}
	return angles
}

// BinNormalized returns the mass of bin i divided by the largest mass in the cell, or 0 when
// the cell is empty.
func (c *Cell) BinNormalized(i int) (float64, error) {
	if err := c.checkBin(i); err != nil {
		return 0, err
	}
	maxMass := c.MaxMass()
	if maxMass == 0 {
		return 0, nil
	}
	return c.masses[i] / maxMass, nil
}

// Masses returns a copy of the raw masses.
func (c *Cell) Masses() []float64 {
	out := make([]float64, len(c.masses))
	copy(out, c.masses)
	return out
}

// Normalized returns every bin divided by the largest mass, all zeros for an empty cell.
func (c *Cell) Normalized() []float64 {
	out := c.Masses()
	if maxMass := floats.Max(out); maxMass > 0 {
		for i := range out {
			out[i] /= maxMass
		}
	}
	return out
}

// Total returns the sum of all masses.
func (c *Cell) Total() float64 {
	return floats.Sum(c.masses)
}

// MaxMass returns the largest bin mass.
func (c *Cell) MaxMass() float64 {
	return floats.Max(c.masses)
}

// DominantBin returns the index of the heaviest bin; the lowest index wins ties.
func (c *Cell) DominantBin() int {
	return floats.MaxIdx(c.masses)
}

package terrain

import "heightmapper/internal/heightfield"

// channel is the range a river's centre column may wander in.
type channel struct {
	halfWidth      int
	minMid, maxMid int
}

// confineChannel derives the wander range for a river of the given width kept
// within the middle confinePct percent of a view viewWidth cells wide. It
// reports false when the confinement band is narrower than the river.
func confineChannel(viewWidth, width, confinePct int) (channel, bool) {
	band := float64(viewWidth) * float64(confinePct) * 0.01
	if band < float64(width) {
		return channel{}, false
	}
	half := width / 2
	minX := int((float64(viewWidth) - band) / 2)
	maxX := min(int(float64(minX)+band), viewWidth-1)
	c := channel{halfWidth: half, minMid: minX + half}
	c.maxMid = max(maxX-half, c.minMid)
	return c, true
}

// span is the number of admissible centre columns.
func (c channel) span() int { return c.maxMid - c.minMid + 1 }

func (c channel) clamp(mid int) int {
	return min(max(mid, c.minMid), c.maxMid)
}

// riverProfile returns the depth removed at each distance from the centre
// column, falling linearly from depth to 0 at halfWidth.
func riverProfile(depth uint16, halfWidth int) []uint16 {
	depths := make([]uint16, halfWidth+1)
	depths[0] = depth
	for i := 1; i <= halfWidth; i++ {
		depths[i] = uint16(float64(depth) * (1 - float64(i)/float64(halfWidth)))
	}
	return depths
}

// carveRow lowers row y around mid by the profile, saturating at 0.
func carveRow(f *heightfield.Field, y, mid int, depths []uint16) {
	half := len(depths) - 1
	for x := max(mid-half, 0); x <= min(mid+half, f.Width()-1); x++ {
		d := depths[abs(x-mid)]
		if h := f.At(x, y); h > d {
			f.Put(x, y, h-d)
		} else {
			f.Put(x, y, 0)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

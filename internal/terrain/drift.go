package terrain

// momentumStep maps a byte to a drift in [-3,3]. Bytes in [96,144) repeat the
// sign of the previous drift at magnitude 3, 2 or 1, or yield 0 when the
// previous drift was 0.
func momentumStep(b byte, momentum int) int {
	switch {
	case b < 16:
		return -3
	case b < 32:
		return -2
	case b < 48:
		return -1
	case b < 64:
		return 1
	case b < 80:
		return 2
	case b < 96:
		return 3
	case b < 112:
		return sign(momentum) * 3
	case b < 128:
		return sign(momentum) * 2
	case b < 144:
		return sign(momentum)
	default:
		return 0
	}
}

// wallStep is the canyon wall walk.
func wallStep(b byte) int {
	switch {
	case b < 32:
		return -2
	case b < 64:
		return -1
	case b < 96:
		return 1
	case b < 128:
		return 2
	default:
		return 0
	}
}

// riverStep is the free meander of River.
func riverStep(b byte) int {
	switch {
	case b < 32:
		return -2
	case b < 64:
		return -3
	case b < 96:
		return -1
	case b < 128:
		return 1
	case b < 160:
		return 3
	case b < 192:
		return 2
	default:
		return 0
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

package perlin

// gradDot selects one of sixteen gradient directions by code and returns
// its dot product with the corner-to-sample vector (x, y, z). The branch
// table replaces stored, normalized gradient vectors entirely. It is
// kept verbatim from the reference gradient set, asymmetries at 0xd and
// 0xf included — changing them would change every generated field.
func gradDot(code int, x, y, z float64) float64 {
	switch code {
	case 0x0:
		return x + y
	case 0x1:
		return -x + y
	case 0x2:
		return x - y
	case 0x3:
		return -x - y
	case 0x4:
		return x + z
	case 0x5:
		return -x + z
	case 0x6:
		return x - z
	case 0x7:
		return -x - z
	case 0x8:
		return y + z
	case 0x9:
		return -y + z
	case 0xa:
		return y - z
	case 0xb:
		return -y - z
	case 0xc:
		return y + x
	case 0xd:
		return -y + z
	case 0xe:
		return y - x
	default: // 0xf
		return -y - z
	}
}

package settlement

// Embedment reduction factor If for elastic settlement of a rectangular
// footing, tabulated against Poisson's ratio, Df/B and L/B (Bowles).
// Values outside the table are clamped to its edges.

var nuValues = []float64{0.0, 0.1, 0.3, 0.4, 0.5}
var dbValues = []float64{0.05, 0.1, 0.2, 0.4, 0.6, 0.8, 1.0, 2.0}
var lbValues = []float64{1.0, 1.2, 1.4, 1.6, 1.8, 2.0, 5.0}

// ifTable[nu][Df/B][L/B]
var ifTable = [5][8][7]float64{
	{
		{0.950, 0.954, 0.957, 0.959, 0.961, 0.963, 0.973},
		{0.904, 0.911, 0.917, 0.922, 0.925, 0.928, 0.948},
		{0.825, 0.838, 0.847, 0.855, 0.862, 0.867, 0.903},
		{0.710, 0.727, 0.740, 0.752, 0.761, 0.769, 0.827},
		{0.635, 0.652, 0.666, 0.678, 0.689, 0.698, 0.769},
		{0.585, 0.600, 0.614, 0.626, 0.637, 0.646, 0.723},
		{0.549, 0.563, 0.576, 0.587, 0.598, 0.607, 0.686},
		{0.468, 0.476, 0.484, 0.492, 0.499, 0.506, 0.577},
	},
	{
		{0.958, 0.962, 0.965, 0.967, 0.968, 0.970, 0.978},
		{0.919, 0.926, 0.930, 0.934, 0.938, 0.940, 0.957},
		{0.848, 0.859, 0.868, 0.875, 0.881, 0.886, 0.917},
		{0.739, 0.755, 0.768, 0.779, 0.788, 0.795, 0.848},
		{0.665, 0.682, 0.696, 0.708, 0.718, 0.727, 0.793},
		{0.615, 0.630, 0.644, 0.656, 0.667, 0.676, 0.749},
		{0.579, 0.593, 0.606, 0.618, 0.628, 0.637, 0.714},
		{0.496, 0.505, 0.513, 0.521, 0.528, 0.535, 0.606},
	},
	{
		{0.979, 0.981, 0.982, 0.983, 0.984, 0.985, 0.990},
		{0.954, 0.958, 0.962, 0.964, 0.966, 0.968, 0.977},
		{0.902, 0.911, 0.917, 0.923, 0.927, 0.930, 0.951},
		{0.808, 0.823, 0.834, 0.843, 0.851, 0.857, 0.899},
		{0.738, 0.754, 0.767, 0.778, 0.788, 0.796, 0.852},
		{0.687, 0.703, 0.716, 0.728, 0.738, 0.747, 0.813},
		{0.650, 0.665, 0.678, 0.689, 0.700, 0.709, 0.780},
		{0.562, 0.571, 0.580, 0.588, 0.596, 0.603, 0.675},
	},
	{
		{0.989, 0.990, 0.991, 0.992, 0.992, 0.993, 0.995},
		{0.973, 0.976, 0.978, 0.980, 0.981, 0.982, 0.988},
		{0.932, 0.940, 0.945, 0.949, 0.952, 0.955, 0.970},
		{0.848, 0.862, 0.872, 0.881, 0.887, 0.893, 0.927},
		{0.779, 0.795, 0.808, 0.819, 0.828, 0.836, 0.886},
		{0.727, 0.743, 0.757, 0.769, 0.779, 0.788, 0.849},
		{0.689, 0.704, 0.718, 0.730, 0.740, 0.749, 0.818},
		{0.596, 0.606, 0.615, 0.624, 0.632, 0.640, 0.714},
	},
	{
		{0.997, 0.997, 0.998, 0.998, 0.998, 0.998, 0.999},
		{0.988, 0.990, 0.991, 0.992, 0.993, 0.993, 0.996},
		{0.960, 0.966, 0.969, 0.972, 0.974, 0.976, 0.985},
		{0.886, 0.899, 0.908, 0.916, 0.922, 0.926, 0.953},
		{0.818, 0.834, 0.847, 0.857, 0.866, 0.873, 0.917},
		{0.764, 0.781, 0.795, 0.807, 0.817, 0.826, 0.883},
		{0.723, 0.740, 0.754, 0.766, 0.777, 0.786, 0.852},
		{0.622, 0.633, 0.643, 0.653, 0.662, 0.670, 0.747},
	},
}

func findBounds(values []float64, target float64) (int, int) {
	for i := 0; i < len(values)-1; i++ {
		if target >= values[i] && target <= values[i+1] {
			return i, i + 1
		}
	}
	return len(values) - 2, len(values) - 1
}

func lerp(x0, x1, t float64) float64 {
	return x0*(1-t) + x1*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// reductionFactor trilinearly interpolates If for the given Poisson's
// ratio, embedment ratio Df/B and aspect ratio L/B.
func reductionFactor(nu, db, lb float64) float64 {
	nu = clamp(nu, 0, 0.5)
	db = clamp(db, 0.05, 2.0)
	lb = clamp(lb, 1.0, 5.0)

	ni0, ni1 := findBounds(nuValues, nu)
	di0, di1 := findBounds(dbValues, db)
	li0, li1 := findBounds(lbValues, lb)

	tx := (nu - nuValues[ni0]) / (nuValues[ni1] - nuValues[ni0])
	ty := (db - dbValues[di0]) / (dbValues[di1] - dbValues[di0])
	tz := (lb - lbValues[li0]) / (lbValues[li1] - lbValues[li0])

	c00 := lerp(ifTable[ni0][di0][li0], ifTable[ni1][di0][li0], tx)
	c01 := lerp(ifTable[ni0][di0][li1], ifTable[ni1][di0][li1], tx)
	c10 := lerp(ifTable[ni0][di1][li0], ifTable[ni1][di1][li0], tx)
	c11 := lerp(ifTable[ni0][di1][li1], ifTable[ni1][di1][li1], tx)

	c0 := lerp(c00, c10, ty)
	c1 := lerp(c01, c11, ty)
	return lerp(c0, c1, tz)
}

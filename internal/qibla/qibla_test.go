package qibla

import "testing"

func TestBearing_KnownLocations(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantDeg int
		wantDir string
	}{
		// Cairo: qibla is east-southeast of Egypt.
		{"cairo", 30.0444, 31.2357, 136, "SE"},
		// Jakarta: qibla points west-northwest.
		{"jakarta", -6.2088, 106.8456, 295, "NW"},
		// London: southeast.
		{"london", 51.5074, -0.1278, 118, "SE"},
		// Directly north of the Kaaba: due south.
		{"north of kaaba", 31.4225, 39.8262, 180, "S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deg, dir := Bearing(tt.lat, tt.lon)
			if deg != tt.wantDeg {
				t.Errorf("Bearing(%v, %v) degrees = %d, want %d", tt.lat, tt.lon, deg, tt.wantDeg)
			}
			if dir != tt.wantDir {
				t.Errorf("Bearing(%v, %v) direction = %s, want %s", tt.lat, tt.lon, dir, tt.wantDir)
			}
		})
	}
}

func TestBearing_Range(t *testing.T) {
	// Sweep a coarse lat/lon grid; every result must be a valid degree
	// and a valid octant label.
	valid := map[string]bool{
		"N": true, "NE": true, "E": true, "SE": true,
		"S": true, "SW": true, "W": true, "NW": true,
	}
	for lat := -80.0; lat <= 80.0; lat += 20 {
		for lon := -180.0; lon < 180.0; lon += 30 {
			deg, dir := Bearing(lat, lon)
			if deg < 0 || deg >= 360 {
				t.Fatalf("Bearing(%v, %v) = %d, out of [0, 360)", lat, lon, deg)
			}
			if !valid[dir] {
				t.Fatalf("Bearing(%v, %v) direction = %q, not an octant", lat, lon, dir)
			}
		}
	}
}

func TestBearing_AtKaaba(t *testing.T) {
	// Zero distance is degenerate but must not panic and must stay in range.
	deg, dir := Bearing(KaabaLatitude, KaabaLongitude)
	if deg < 0 || deg >= 360 {
		t.Errorf("degenerate bearing %d out of range", deg)
	}
	if dir == "" {
		t.Error("degenerate bearing has empty direction")
	}
}

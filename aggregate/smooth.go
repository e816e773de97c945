package aggregate

import "math"

// MovingAverage attaches a trailing mean over at most window points to every
// point of an ascending series. The window grows from the first point until it
// is full. Values are rounded to 2 decimals.
func MovingAverage(points []Point, window int) []Point {
	if window < 1 {
		window = 1
	}

	result := make([]Point, len(points))
	sum := 0
	for i, p := range points {
		sum += p.Cases
		if i >= window {
			sum -= points[i-window].Cases
		}

		size := i + 1
		if size > window {
			size = window
		}

		avg := math.Round(float64(sum)/float64(size)*100) / 100
		result[i] = Point{
			Date:          p.Date,
			Cases:         p.Cases,
			MovingAverage: &avg,
		}
	}
	return result
}

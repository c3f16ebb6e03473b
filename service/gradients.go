package service

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"logo-banner/models"
)

// DefaultBackground is the composition background of a new session
const DefaultBackground = "linear-gradient(135deg, #639381, #533ebb)"

const maxBackgroundLength = 512

// Gradients is the predefined palette offered by the gradient picker
var Gradients = []string{
	"linear-gradient(135deg, #1e3c72, #2a5298)",
	"linear-gradient(135deg, #232526, #414345)",
	"linear-gradient(135deg, #0f2027, #2c5364)",
	"linear-gradient(135deg, #42275a, #734b6d)",
	"linear-gradient(135deg, #3a1c71, #d76d77)",
	"linear-gradient(135deg, #373b44, #485563)",
	"linear-gradient(135deg, #141e30, #243b55, #3c6478)",
	"linear-gradient(135deg, #283048, #859398, #b4d2e7)",
	"linear-gradient(135deg, #2c3e50, #4ca1af, #2a5298)",
	"linear-gradient(135deg, #0f2027, #203a43, #2c5364, #4ca1af)",
	"linear-gradient(135deg, #1e3c72, #2a5298, #6a11cb, #2575fc)",
	"linear-gradient(135deg, #232526, #414345, #485563, #6a89cc)",
	"linear-gradient(135deg, #ff7e5f, #feb47b)",
	"linear-gradient(135deg, #6a11cb, #2575fc)",
	"linear-gradient(135deg, #36d1dc, #5b86e5)",
	"linear-gradient(135deg, #ff512f, #dd2476)",
	"linear-gradient(135deg, #1f4037, #99f2c8)",
	"linear-gradient(135deg, #485563, #29323c)",
	"linear-gradient(135deg, #ff9966, #ff5e62, #ee0979)",
	"linear-gradient(135deg, #43c6ac, #191654, #0f2027)",
	"linear-gradient(135deg, #4568dc, #b06ab3, #f093fb)",
	"linear-gradient(135deg, #373b44, #4286f4, #6dd5ed)",
	"linear-gradient(135deg, #ff7e5f, #feb47b, #fdbb2d)",
	"linear-gradient(135deg, #0f2027, #2c5364, #36d1dc, #5b86e5)",
	"linear-gradient(135deg, #141e30, #243b55, #6a89cc, #a8d8ea)",
	"linear-gradient(135deg, #283048, #859398, #dce2e9, #f3f7fa)",
	"linear-gradient(135deg, #232526, #414345, #a1c4fd, #c2e9fb)",
	"linear-gradient(135deg, #1f4037, #99f2c8, #fdfbfb, #ebedee)",
	"linear-gradient(135deg, #485563, #28313b, #4b79a1, #283048)",
	"linear-gradient(135deg, #141e30, #243b55, #2a5298, #b4d2e7)",
	"linear-gradient(135deg, #1e3c72, #2a5298, #36d1dc, #5b86e5, #b3ffab, #12fff7)",
	"linear-gradient(135deg, #141e30, #243b55, #6a89cc, #a8d8ea, #f3f4f5, #ffffff)",
	"linear-gradient(135deg, #42275a, #734b6d, #d76d77, #ffaf7b, #ffd194, #ffb347)",
	"linear-gradient(135deg, #283048, #859398, #b4d2e7, #f3f7fa, #ffffff, #ece9e6)",
	"linear-gradient(135deg, #373b44, #485563, #6a11cb, #2575fc, #5ffbf1, #c2f9bb)",
	"linear-gradient(135deg, #0f2027, #2c5364, #36d1dc, #5b86e5, #99f2c8, #ebedee)",
	"linear-gradient(135deg, #485563, #28313b, #4b79a1, #283048, #1f4037, #a8e063)",
	"linear-gradient(135deg, #ff9966, #ff5e62, #ee0979, #ff6f61, #ffaa85, #ffd2a5)",
	"linear-gradient(135deg, #ff7e5f, #feb47b, #fdbb2d, #ffe600, #f7ff00, #d9ff00)",
	"linear-gradient(135deg, #0f2027, #203a43, #2c5364, #36d1dc, #5b86e5, #6c63ff)",
	"linear-gradient(135deg, #232526, #414345, #6a11cb, #b21f1f, #e14eca, #fddb92)",
	"linear-gradient(135deg, #141e30, #243b55, #8a9ba8, #ccd8e1, #f6f6f6, #ffffff)",
	"linear-gradient(135deg, #ff512f, #dd2476, #b22fba, #5e72e4, #23a6d5, #23d5ab)",
	"linear-gradient(135deg, #ffafbd, #ffc3a0, #ffde9e, #ffefba, #d4fc79, #96e6a1)",
	"linear-gradient(135deg, #0f0c29, #302b63, #24243e, #4a47a3, #8757f8, #ff6e9c)",
}

var (
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbColorPattern = regexp.MustCompile(`^rgba?\(\s*[0-9.]+%?\s*,\s*[0-9.]+%?\s*,\s*[0-9.]+%?\s*(,\s*[0-9.]+%?\s*)?\)$`)
	gradientPattern = regexp.MustCompile(`^(linear|radial)-gradient\([0-9a-zA-Z#(),.%\s-]+\)$`)
)

// ValidateBackground accepts a hex colour, rgb()/rgba() or a gradient built from safe characters.
// The value ends up inside a style attribute, anything else is rejected.
func ValidateBackground(css string) (string, error) {
	css = strings.TrimSpace(css)
	if css == "" || len(css) > maxBackgroundLength {
		return "", models.ErrInvalidBackground
	}
	if hexColorPattern.MatchString(css) || rgbColorPattern.MatchString(css) {
		return css, nil
	}
	if gradientPattern.MatchString(css) && strings.Count(css, "(") == strings.Count(css, ")") {
		return css, nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrInvalidBackground, css)
}

// GradientAt returns the predefined gradient at index
func GradientAt(index int) (string, error) {
	if index < 0 || index >= len(Gradients) {
		return "", fmt.Errorf("%w: gradient %d out of range", models.ErrInvalidBackground, index)
	}
	return Gradients[index], nil
}

// RandomGradient builds a 135 degree gradient between two random colours
func RandomGradient(rng *rand.Rand) string {
	c := func() string {
		return fmt.Sprintf("rgb(%d, %d, %d)", rng.IntN(256), rng.IntN(256), rng.IntN(256))
	}
	return fmt.Sprintf("linear-gradient(135deg, %s, %s)", c(), c())
}

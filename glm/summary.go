package glm

import (
	"fmt"
	"strings"

	"github.com/statkit/linmod/matrix"
)

// summary renders the fitted-model report: family and link names, the
// iteration count, the rounded AIC, and the rounded coefficients one per
// line.  Rounding is display-only; the stored coefficients keep full
// precision.
func (m *Model) summary() string {
	var sb strings.Builder

	sb.WriteString("Generalized linear model\n")
	if m.fam != nil {
		fmt.Fprintf(&sb, "Family:     %s\n", m.fam.Name)
		fmt.Fprintf(&sb, "Link:       %s\n", m.fam.Link.Name)
	}

	if !m.fitted {
		sb.WriteString("Not fitted\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Iterations: %d\n", m.iterations)
	fmt.Fprintf(&sb, "AIC:        %v\n", matrix.Round(m.aic))
	sb.WriteString("Coefficients:\n")
	for j := 0; j < m.betas.Rows(); j++ {
		fmt.Fprintf(&sb, "  %v\n", matrix.Round(m.betas.At(j, 0)))
	}

	return sb.String()
}

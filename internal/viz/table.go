package viz

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/motionkit/internal/mover"
	"github.com/san-kum/motionkit/internal/physics"
)

// SetTable renders one row per configuration, in set order.
func SetTable(set *physics.Set) string {
	if set.Len() == 0 {
		return Subtle.Render("(no configurations)") + "\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tSTIFFNESS\tDAMPING\tFRICTION\tRATIO")
	set.Each(func(name string, p physics.Params) {
		fmt.Fprintf(w, "%s\t", name)
		values := p.GetParams()
		for _, field := range physics.FieldNames {
			fmt.Fprintf(w, "%g\t", values[field])
		}
		fmt.Fprintf(w, "%s\n", MetricValue.Render(ratio(p)))
	})
	w.Flush()

	lines := strings.SplitN(b.String(), "\n", 2)
	return HeaderStyle.Render(lines[0]) + "\n" + lines[1]
}

func ratio(p physics.Params) string {
	if p.Validate() != nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", p.DampingRatio())
}

// NamesTable lists the derived keys of a mover.
func NamesTable(n mover.Names) string {
	rows := [][2]string{
		{"value", n.Value},
		{"valueGoal", n.ValueGoal},
		{"isMoving", n.IsMoving},
		{"moveMode", n.MoveMode},
		{"physicsConfigName", n.PhysicsConfigName},
		{"physicsConfigs", n.PhysicsConfigs},
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r[0], NameStyle.Render(r[1]))
	}
	w.Flush()
	return b.String()
}

// BagTable lists state entries sorted by key.
func BagTable(bag mover.Bag) string {
	keys := make([]string, 0, len(bag))
	for k := range bag {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%v\n", k, bag[k])
	}
	w.Flush()
	return b.String()
}

package services

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies a planning request. Planning is deterministic, so
// two requests with the same fingerprint produce the same plan. Box and
// vehicle order are part of the key because both affect tie-breaks.
func Fingerprint(req PlanFleetRequest) string {
	d := xxhash.New()

	o := req.Options
	fmt.Fprintf(d, "opts|%t|%t|%t|%d\n", o.AllowRotation, o.AllowStacking, o.SortByWeight, o.BinLimit())

	for _, v := range req.Vehicles {
		fmt.Fprintf(d, "veh|%q|%q|%s|%s|%s|%s\n",
			v.Name, v.Mode, ff(v.Length), ff(v.Width), ff(v.Height), ff(v.MaxWeight))
	}

	for _, b := range req.Boxes {
		fmt.Fprintf(d, "box|%d|%q|%s|%s|%s|%s|%t|%q\n",
			b.ID, b.Name, ff(b.Length), ff(b.Width), ff(b.Height), ff(b.Weight), b.Stackable, b.Description)
	}

	return fmt.Sprintf("%016x", d.Sum64())
}

func ff(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

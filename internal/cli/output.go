package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oryweaver/auction/internal/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// FormatPhaseChanges prints one line per applied or planned step.
func FormatPhaseChanges(w io.Writer, changes []domain.PhaseChange) error {
	if len(changes) == 0 {
		_, err := fmt.Fprintln(w, "No phase changes.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "AUCTION\tFROM\tTO")
	for _, ch := range changes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ch.AuctionID, ch.From, ch.To)
	}
	return tw.Flush()
}

func FormatResolution(w io.Writer, r *domain.ResolutionReport) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Auction %s resolved at %s\n", r.AuctionID, r.At.Format("2006-01-02 15:04:05 MST"))
	if len(r.Winners) > 0 {
		fmt.Fprintln(tw, "ITEM\tBIDDER\tAMOUNT")
		for _, win := range r.Winners {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", win.ItemID, win.BidderID, win.Amount.StringFixed(2))
		}
	}
	for _, id := range r.NoBids {
		fmt.Fprintf(tw, "%s\tno bids\t\n", id)
	}
	for _, id := range r.Failed {
		fmt.Fprintf(tw, "%s\tFAILED\t\n", id)
	}
	return tw.Flush()
}

// FormatStatement prints a commitments or sales statement with its total.
func FormatStatement(w io.Writer, title string, st *domain.Statement) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "%s %s\n", title, st.OwnerID)
	if len(st.Lines) == 0 {
		fmt.Fprintln(tw, "No commitments.")
	} else {
		fmt.Fprintln(tw, "DATE\tITEM\tSOURCE\tQTY\tAMOUNT\tTOTAL")
		for i := range st.Lines {
			c := &st.Lines[i]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
				c.CreatedAt.Format("2006-01-02"),
				c.ItemID,
				c.Source,
				c.Quantity,
				c.Amount.StringFixed(2),
				c.Total().StringFixed(2),
			)
		}
	}
	fmt.Fprintf(tw, "Total\t\t\t\t\t%s\n", st.Total.StringFixed(2))
	return tw.Flush()
}

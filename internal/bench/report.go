package bench

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render 以表格形式输出计时结果。
func (r *Report) Render(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("SM4 performance (key %v, plaintext %v)", r.Key,
		r.Plaintext)
	tw.AppendHeader(table.Row{
		"Transform", "Blocks", "Workers", "Elapsed", "Avg/block",
		"MB/s", "Ciphertext",
	})

	for _, res := range r.Results {
		tw.AppendRow(table.Row{
			res.Transform,
			res.Blocks,
			res.Workers,
			res.Elapsed.String(),
			fmt.Sprintf("%.4f us",
				float64(res.PerBlock().Nanoseconds())/1e3),
			fmt.Sprintf("%.2f", res.Throughput()),
			res.Ciphertext.String(),
		})
	}

	if len(r.Results) == 2 && r.Results[1].Elapsed > 0 {
		speedup := float64(r.Results[0].Elapsed) /
			float64(r.Results[1].Elapsed)
		tw.AppendFooter(table.Row{
			"", "", "", "", "",
			fmt.Sprintf("%s/%s", r.Results[0].Transform,
				r.Results[1].Transform),
			fmt.Sprintf("%.2fx", speedup),
		})
	}

	tw.Render()
}

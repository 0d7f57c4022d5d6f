package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/pkg/money"
)

// Auto-print delays in milliseconds. The print window needs time to lay out
// and paint before window.print(); mobile browsers need noticeably longer.
const (
	DesktopPrintDelayMS = 800
	IOSPrintDelayMS     = 2000
	AndroidPrintDelayMS = 1500
)

// HTMLOptions controls the standalone HTML rendering.
type HTMLOptions struct {
	// AutoPrint embeds a delayed window.print() call. Never set for
	// previews: a preview exposes no print action.
	AutoPrint bool
	// PrintDelayMS defaults to DesktopPrintDelayMS when zero.
	PrintDelayMS int
}

// RenderHTML produces a fully self-contained HTML document: styles are
// inlined because the print window or the downloaded file has no access to
// the application's assets.
func RenderHTML(r *entity.Receipt, opts HTMLOptions) (string, error) {
	delay := opts.PrintDelayMS
	if delay <= 0 {
		delay = DesktopPrintDelayMS
	}

	var buf bytes.Buffer
	err := htmlTmpl.Execute(&buf, htmlData{
		Receipt:   r,
		AutoPrint: opts.AutoPrint && !r.IsPreview,
		DelayMS:   delay,
	})
	if err != nil {
		return "", fmt.Errorf("receipt: html render failed: %w", err)
	}
	return buf.String(), nil
}

type htmlData struct {
	Receipt   *entity.Receipt
	AutoPrint bool
	DelayMS   int
}

var htmlTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"vnd":  money.Format,
	"rate": trimRate,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Receipt.Title}}</title>
<style>
body { font-family: "Courier New", monospace; font-size: 12px; margin: 0; padding: 8px; width: 280px; }
.center { text-align: center; }
.store { font-size: 16px; font-weight: bold; }
.title { font-weight: bold; margin: 6px 0; }
.row { display: flex; justify-content: space-between; }
.total { font-weight: bold; font-size: 14px; }
.muted { color: #555; }
hr { border: none; border-top: 1px dashed #000; }
@media print { body { width: auto; } }
</style>
</head>
<body>
<div class="center">
<div class="store">{{.Receipt.Header.StoreName}}</div>
{{if .Receipt.Header.Address}}<div>{{.Receipt.Header.Address}}</div>{{end}}
{{if .Receipt.Header.Phone}}<div>{{.Receipt.Header.Phone}}</div>{{end}}
{{if .Receipt.Header.TaxCode}}<div>Tax code: {{.Receipt.Header.TaxCode}}</div>{{end}}
<div class="title">{{.Receipt.Title}}</div>
</div>
<hr>
{{if .Receipt.NoData}}
<div class="center muted">No receipt data</div>
{{else}}
{{if .Receipt.ReceiptNo}}<div class="row"><span>Receipt:</span><span>{{.Receipt.ReceiptNo}}</span></div>{{end}}
{{if .Receipt.Date}}<div class="row"><span>Date:</span><span>{{.Receipt.Date}}</span></div>{{end}}
{{if .Receipt.Table}}<div class="row"><span>Table:</span><span>{{.Receipt.Table}}</span></div>{{end}}
{{if .Receipt.Cashier}}<div class="row"><span>Cashier:</span><span>{{.Receipt.Cashier}}</span></div>{{end}}
{{if .Receipt.Customer}}<div class="row"><span>Customer:</span><span>{{.Receipt.Customer}}</span></div>{{end}}
{{if .Receipt.PaymentMethod}}<div class="row"><span>Payment:</span><span>{{.Receipt.PaymentMethod}}</span></div>{{end}}
<hr>
{{range .Receipt.Items}}
<div>{{.Name}}</div>
<div class="row"><span>&nbsp;&nbsp;{{.Quantity}} x {{vnd .UnitPrice}}</span><span>{{vnd .Amount}}</span></div>
{{if gt .Discount 0}}<div class="row muted"><span>&nbsp;&nbsp;discount</span><span>-{{vnd .Discount}}</span></div>{{end}}
{{end}}
<hr>
<div class="row"><span>Subtotal:</span><span>{{vnd .Receipt.SubTotal}}</span></div>
{{if gt .Receipt.DiscountTotal 0}}<div class="row"><span>Discount:</span><span>-{{vnd .Receipt.DiscountTotal}}</span></div>{{end}}
{{range .Receipt.TaxGroups}}
<div class="row"><span>VAT {{rate .Rate}}%:</span><span>{{vnd .Amount}}</span></div>
{{end}}
<div class="row total"><span>TOTAL:</span><span>{{vnd .Receipt.GrandTotal}}</span></div>
<hr>
<div class="center">{{if .Receipt.Footer}}{{.Receipt.Footer}}{{else}}Thank you, see you again!{{end}}</div>
{{end}}
{{if .AutoPrint}}
<script>
setTimeout(function () {
  window.print();
  setTimeout(function () { window.close(); }, 1000);
}, {{.DelayMS}});
</script>
{{end}}
</body>
</html>
`))

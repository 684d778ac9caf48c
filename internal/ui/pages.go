// Package ui renders the HTML pages with gomponents. Charts are plain
// data series handed to Plotly (loaded from its CDN) on the client.
package ui

import (
	"fmt"
	"time"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

const plotlyCDN = "https://cdn.plot.ly/plotly-latest.min.js"

const appCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f8f9fa; padding: 20px; }
.center { min-height: 100vh; display: flex; align-items: center; justify-content: center; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); }
.container { max-width: 1400px; margin: 0 auto; }
.panel { background: white; border-radius: 20px; padding: 40px; max-width: 600px; width: 100%; box-shadow: 0 20px 60px rgba(0,0,0,0.3); }
h1.brand { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); -webkit-background-clip: text; -webkit-text-fill-color: transparent; margin-bottom: 10px; font-size: 36px; }
.upload-area { border: 2px dashed #667eea; border-radius: 15px; padding: 40px; text-align: center; margin: 30px 0; cursor: pointer; }
.upload-area:hover { background: #f8f9fa; border-color: #764ba2; }
.btn { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; border: none; padding: 12px 30px; border-radius: 25px; font-size: 16px; cursor: pointer; text-decoration: none; }
.error { background: #ff4444; color: white; padding: 15px; border-radius: 10px; margin-bottom: 20px; }
.header { background: white; border-radius: 15px; padding: 20px 30px; margin-bottom: 20px; display: flex; justify-content: space-between; align-items: center; box-shadow: 0 2px 10px rgba(0,0,0,0.05); }
.metrics { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 20px; margin-bottom: 20px; }
.metric-card { background: white; padding: 20px; border-radius: 15px; box-shadow: 0 2px 10px rgba(0,0,0,0.05); }
.metric-label { font-size: 12px; color: #999; text-transform: uppercase; margin-bottom: 5px; }
.metric-value { font-size: 28px; font-weight: bold; color: #333; }
.metric-sub { color: #666; font-size: 12px; margin-top: 5px; }
.menu { background: white; border-radius: 15px; padding: 15px; margin-bottom: 20px; display: flex; flex-wrap: wrap; gap: 10px; }
.menu-item { padding: 10px 20px; border-radius: 25px; text-decoration: none; color: #666; background: #f8f9fa; }
.menu-item:hover, .menu-item.active { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; }
.viz-container { background: white; border-radius: 15px; padding: 30px; margin-bottom: 20px; box-shadow: 0 2px 10px rgba(0,0,0,0.05); }
.viz-title { font-size: 20px; color: #333; margin-bottom: 20px; padding-bottom: 15px; border-bottom: 1px solid #eee; }
.placeholder { color: #666; text-align: center; padding: 40px 0; }
.table-wrapper { overflow-x: auto; }
table { width: 100%; border-collapse: collapse; font-size: 14px; }
th { background: #f8f9fa; padding: 12px; text-align: left; border-bottom: 2px solid #dee2e6; }
td { padding: 12px; border-bottom: 1px solid #eee; }
.footer { text-align: center; color: #999; font-size: 12px; margin-top: 40px; }
`

// IndexPage is the upload form. errMsg renders the flash banner when a
// previous request was redirected back with an error.
func IndexPage(errMsg string) gomponents.Node {
	return html.HTML(
		html.Lang("es"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text("Sales Analytics")),
			html.StyleEl(gomponents.Raw(appCSS)),
		),
		html.Body(
			html.Class("center"),
			html.Div(
				html.Class("panel"),
				html.H1(html.Class("brand"), gomponents.Text("📊 Sales Analytics")),
				html.P(html.Style("color: #666;"), gomponents.Text("Sube tu archivo de ventas (CSV, Excel o JSON)")),
				gomponents.If(errMsg != "", html.Div(html.Class("error"), gomponents.Text(errMsg))),
				html.Form(
					html.Method("post"),
					html.EncType("multipart/form-data"),
					html.Action("/upload"),
					html.Div(
						html.Class("upload-area"),
						html.P(html.Style("font-size: 48px;"), gomponents.Text("📁")),
						html.P(html.Style("color: #667eea; font-weight: bold;"), gomponents.Text("Selecciona un archivo")),
						html.Input(html.Type("file"), html.Name("file"), html.Accept(".csv,.xlsx,.xls,.json"), html.Required()),
					),
					html.Button(html.Type("submit"), html.Class("btn"), gomponents.Text("Procesar Archivo")),
				),
				html.P(
					html.Style("text-align: center; margin-top: 20px;"),
					html.A(html.Href("/sample"), html.Style("color: #667eea; text-decoration: none;"), gomponents.Text("📊 Usar datos de ejemplo")),
				),
			),
		),
	)
}

func footer() gomponents.Node {
	return html.Div(
		html.Class("footer"),
		gomponents.Text(fmt.Sprintf("Sales Analytics · %s", time.Now().Format("02/01/2006 15:04"))),
	)
}

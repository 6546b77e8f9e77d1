// Package templates holds the dashboard page. The page is a static shell:
// every section is populated through the /sse endpoints via datastar, and the
// charts are drawn by Chart.js from the patched signals.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Dashboard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, dashboardPage)
		return err
	})
}

const dashboardPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Superstore Sales Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.2/bundles/datastar.js"></script>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.3/dist/chart.umd.min.js"></script>
<style>
body {font-family: system-ui, sans-serif; background-color: #f5f7fa; margin: 0;}
h1 {color: #1f77b4; text-align: center;}
h2 {color: #2c3e50;}
.layout {display: flex;}
.sidebar {width: 260px; padding: 20px; background: white; min-height: 100vh;}
.content {flex: 1; padding: 20px;}
.kpi-row {display: flex; gap: 10px; flex-wrap: wrap;}
.kpi-box {background: white; padding: 20px; border-radius: 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); text-align: center; flex: 1;}
.kpi-value {font-size: 24px; font-weight: bold; color: #1f77b4; margin: 10px 0;}
.kpi-label {font-size: 14px; color: #666; font-weight: 600;}
.panel {background: white; border-radius: 10px; padding: 16px; margin-top: 20px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);}
.chart-grid {display: grid; grid-template-columns: 1fr 1fr; gap: 20px;}
.modern-table {width: 100%; border-collapse: collapse;}
.modern-table th, .modern-table td {padding: 8px 10px; border-bottom: 1px solid #e5e7eb; text-align: left;}
.category-badge {background: #e0ecf8; border-radius: 6px; padding: 2px 8px;}
.filter-group {margin-bottom: 16px;}
.filter-group label {display: block; font-size: 13px; color: #34495e;}
details.raw {margin-top: 20px;}
</style>
</head>
<body data-on-load="@get('/sse/refresh-all')">
<h1>Superstore Sales Dashboard</h1>
<div class="layout">
<aside class="sidebar">
<h2>Filters</h2>
<div class="filter-group">
<label for="from">From</label>
<input type="date" id="from" data-on-change="@get('/sse/refresh-all' + filterQuery())"/>
<label for="to">To</label>
<input type="date" id="to" data-on-change="@get('/sse/refresh-all' + filterQuery())"/>
</div>
<div class="filter-group" id="category-filter">
<label><input type="checkbox" value="Furniture" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Furniture</label>
<label><input type="checkbox" value="Office Supplies" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Office Supplies</label>
<label><input type="checkbox" value="Technology" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Technology</label>
</div>
<div class="filter-group" id="segment-filter">
<label><input type="checkbox" value="Consumer" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Consumer</label>
<label><input type="checkbox" value="Corporate" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Corporate</label>
<label><input type="checkbox" value="Home Office" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Home Office</label>
</div>
<div class="filter-group" id="state-filter">
<label><input type="checkbox" value="California" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> California</label>
<label><input type="checkbox" value="Florida" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Florida</label>
<label><input type="checkbox" value="New York" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> New York</label>
<label><input type="checkbox" value="Pennsylvania" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Pennsylvania</label>
<label><input type="checkbox" value="Texas" data-on-change="@get('/sse/refresh-all' + filterQuery())"/> Texas</label>
</div>
<a id="export-link" href="/api/export" onclick="this.href='/api/export'+filterQuery()">Download filtered CSV</a>
</aside>
<main class="content">
<div id="kpi-content" class="kpi-row"></div>

<div class="panel" data-on-load="@get('/sse/sales-charts')">
<h2>Sales Analysis</h2>
<div class="chart-grid">
<canvas id="category-chart" data-effect="drawCategoryCharts($categoryData, $segmentData)"></canvas>
<canvas id="segment-chart"></canvas>
<canvas id="monthly-chart" data-effect="drawMonthlyChart($monthlyData)"></canvas>
<div id="category-table"></div>
</div>
<div id="yearly-table"></div>
</div>

<div class="panel" data-on-load="@get('/sse/geo-charts')">
<h2>Geographic Analysis</h2>
<div class="chart-grid">
<canvas id="states-chart" data-effect="drawGeoCharts($statesData, $citiesData)"></canvas>
<canvas id="cities-chart"></canvas>
</div>
</div>

<div class="panel" data-on-load="@get('/sse/product-charts')">
<h2>Product Analysis</h2>
<div class="chart-grid">
<canvas id="subcategory-chart" data-effect="drawProductCharts($subcategoryData, $discountData)"></canvas>
<canvas id="margin-scatter"></canvas>
<canvas id="discount-sales-chart"></canvas>
<canvas id="discount-margin-chart"></canvas>
</div>
</div>

<div class="panel" data-on-load="@get('/sse/shipping')">
<h2>Shipping Mode Analysis</h2>
<div class="chart-grid">
<canvas id="shipping-chart" data-effect="drawShippingChart($shippingData)"></canvas>
<div id="shipping-table"></div>
</div>
</div>

<details class="raw" data-on-load="@get('/sse/raw-preview')">
<summary>View Raw Data</summary>
<div id="preview-table"></div>
</details>
</main>
</div>
<script src="/static/dashboard.js"></script>
</body>
</html>
`

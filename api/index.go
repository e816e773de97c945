package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, indexHTML)
}

const indexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>FoodWatch</title>
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
  <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f8fafc; color: #0f172a; }
    header { display: flex; gap: 1rem; align-items: center; padding: .75rem 1.5rem; background: #0f172a; color: #fff; }
    header nav button { background: none; border: 0; color: #cbd5e1; cursor: pointer; font-size: 1rem; padding: .25rem .5rem; }
    header nav button.active { color: #fff; border-bottom: 2px solid #38bdf8; }
    main { padding: 1.5rem; }
    .controls { display: flex; gap: .5rem; margin-bottom: 1rem; flex-wrap: wrap; }
    .controls input, .controls select, .controls button { padding: .4rem .6rem; }
    .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 1rem; margin-bottom: 1rem; }
    .card { background: #fff; border-radius: .5rem; padding: 1rem; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
    .card b { display: block; font-size: 1.6rem; }
    .charts { display: grid; grid-template-columns: repeat(auto-fit, minmax(360px, 1fr)); gap: 1rem; }
    table { width: 100%; border-collapse: collapse; background: #fff; margin-top: 1rem; }
    th, td { text-align: left; padding: .4rem .6rem; border-bottom: 1px solid #e2e8f0; font-size: .9rem; }
    #map { height: 520px; border-radius: .5rem; }
    #banner { display: none; background: #fee2e2; color: #991b1b; padding: .75rem 1rem; border-radius: .5rem; margin-bottom: 1rem; }
    #toast { position: fixed; right: 1rem; bottom: 1rem; max-width: 320px; display: none; }
    progress { width: 240px; }
  </style>
</head>
<body>
  <header>
    <strong>FoodWatch</strong>
    <nav id="nav"></nav>
    <span id="live" style="margin-left:auto;font-size:.8rem;color:#94a3b8">offline</span>
  </header>
  <main>
    <div id="banner"></div>
    <div class="controls">
      <select id="range">
        <option value="7d">Last 7 days</option>
        <option value="30d">Last 30 days</option>
        <option value="90d">Last 90 days</option>
      </select>
      <input id="q" placeholder="Search">
      <select id="category"></select>
      <select id="order" style="display:none">
        <option value="asc">Name A-Z</option>
        <option value="desc">Name Z-A</option>
      </select>
      <button id="analyze" style="display:none">Analyze cases</button>
      <a id="export" style="display:none" href="#">Export xlsx</a>
      <span id="progress" style="display:none">Analyzing cases <progress max="100" value="0"></progress> <span></span></span>
    </div>
    <div id="content"></div>
    <div id="toast" class="card"></div>
  </main>
  <script>
    var pages = ["dashboard", "alerts", "cases", "trends", "locations", "map"];
    var categories = {
      alerts: ["all", "high", "medium", "low"],
      cases: ["all", "active", "confirmed", "suspected", "resolved", "monitoring"]
    };
    var state = { page: "dashboard", range: "7d", q: "", category: "all", order: "asc" };
    var charts = [];
    var map = null;
    var socket = null;
    var lastSeq = 0;

    function el(id) { return document.getElementById(id); }
    function esc(v) { return String(v == null ? "" : v).replace(/[&<>"]/g, function (c) { return "&#" + c.charCodeAt(0) + ";"; }); }

    function query() {
      var p = new URLSearchParams({ range: state.range, q: state.q, category: state.category, sort: "name", order: state.order });
      return p.toString();
    }

    function renderNav() {
      el("nav").innerHTML = pages.map(function (p) {
        return '<button data-page="' + p + '" class="' + (p === state.page ? "active" : "") + '">' + p + '</button>';
      }).join("");
      el("nav").querySelectorAll("button").forEach(function (b) {
        b.onclick = function () { select(b.dataset.page); };
      });
      var cats = categories[state.page];
      el("category").style.display = cats ? "" : "none";
      el("category").innerHTML = (cats || []).map(function (c) { return '<option>' + c + '</option>'; }).join("");
      el("order").style.display = state.page === "locations" ? "" : "none";
      el("analyze").style.display = state.page === "cases" ? "" : "none";
      el("export").style.display = state.page === "cases" ? "" : "none";
      el("export").href = "/api/cases/export?" + query();
    }

    function select(page) {
      state.page = page;
      state.category = "all";
      renderNav();
      load();
    }

    function banner(message) {
      el("banner").style.display = message ? "block" : "none";
      el("banner").textContent = message || "";
      if (message) { el("content").innerHTML = ""; }
    }

    function toast(t) {
      el("toast").innerHTML = "<b style='font-size:1rem'>" + esc(t.title) + "</b>" + esc(t.description);
      el("toast").style.display = "block";
      setTimeout(function () { el("toast").style.display = "none"; }, 6000);
    }

    function load() {
      fetch("/api/" + state.page + "?" + query()).then(function (r) {
        return r.json().then(function (body) {
          if (!r.ok) { throw new Error(body.message || "request failed"); }
          return body;
        });
      }).then(function (view) { render(state.page, view); }).catch(function (e) { banner(e.message); });
      follow();
    }

    function follow() {
      if (!socket || socket.readyState !== 1) { return; }
      socket.send(JSON.stringify({ page: state.page, range: state.range, q: state.q, category: state.category, sort: "name", order: state.order }));
    }

    function connect() {
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      socket = new WebSocket(proto + location.host + "/api/live");
      socket.onopen = function () { el("live").textContent = "live"; follow(); };
      socket.onclose = function () { el("live").textContent = "offline"; setTimeout(connect, 3000); };
      socket.onmessage = function (ev) {
        var msg = JSON.parse(ev.data);
        if (msg.seq <= lastSeq || msg.page !== state.page) { return; }
        lastSeq = msg.seq;
        if (msg.error) { banner(msg.error); return; }
        render(msg.page, msg.view);
      };
    }

    function card(label, value) { return '<div class="card">' + esc(label) + '<b>' + esc(value) + '</b></div>'; }
    function canvas(id) { return '<div class="card"><canvas id="' + id + '"></canvas></div>'; }
    function table(headers, rows) {
      return "<table><tr>" + headers.map(function (h) { return "<th>" + esc(h) + "</th>"; }).join("") + "</tr>" +
        rows.map(function (r) { return "<tr>" + r.map(function (v) { return "<td>" + esc(v) + "</td>"; }).join("") + "</tr>"; }).join("") + "</table>";
    }

    function chart(id, type, labels, datasets) {
      charts.push(new Chart(el(id), { type: type, data: { labels: labels, datasets: datasets } }));
    }
    function labels(buckets) { return (buckets || []).map(function (b) { return b.label; }); }
    function totals(buckets) { return (buckets || []).map(function (b) { return b.total; }); }
    function estName(r) { return r.establishment ? r.establishment.name : ""; }
    function day(ts) { return String(ts).slice(0, 10); }

    function render(page, v) {
      banner("");
      charts.forEach(function (c) { c.destroy(); });
      charts = [];
      if (map) { map.remove(); map = null; }
      var html = "";
      var daily = v.daily || [];
      switch (page) {
      case "dashboard":
        html = '<div class="cards">' + card("Patients", v.stats.total_patients) + card("Active patients", v.stats.active_patients) +
          card("Alerts", v.stats.total_alerts) + card("High alerts", v.stats.high_alerts) + card("Establishments", v.stats.establishments) +
          card("Trend", v.trend_percent + "%") + '</div><div class="charts">' + canvas("c1") + canvas("c2") + canvas("c3") + '</div>' +
          table(["Recent high alerts", "Establishment", "Cases", "Details"], (v.recent_alerts || []).map(function (a) { return [a.alert_type, estName(a), a.case_count, a.details]; }));
        el("content").innerHTML = html;
        chart("c1", "line", daily.map(function (p) { return p.date; }), [{ label: "Patients", data: daily.map(function (p) { return p.cases; }) }]);
        chart("c2", "pie", labels(v.severity), [{ data: totals(v.severity) }]);
        chart("c3", "bar", labels(v.foods), [{ label: "Foods", data: totals(v.foods) }]);
        break;
      case "alerts":
        html = '<div class="cards">' + card("High", v.stats.high) + card("Medium", v.stats.medium) + card("Low", v.stats.low) + '</div>' +
          table(["Type", "Severity", "Establishment", "Cases", "Details", "Created"], (v.alerts || []).map(function (a) { return [a.alert_type, a.severity, estName(a), a.case_count, a.details, day(a.created_at)]; }));
        el("content").innerHTML = html;
        break;
      case "cases":
        html = '<div class="cards">' + card("Cases", v.stats.total_cases) + card("Patients", v.stats.total_patients) + card("Active patients", v.stats.active_patients) + '</div>' +
          '<div class="charts">' + canvas("c1") + canvas("c2") + '</div>' +
          table(["Reported", "Establishment", "Symptoms", "Foods", "Patients", "Status"], (v.cases || []).map(function (c) { return [day(c.report_date), estName(c), (c.symptoms || []).join(", "), (c.foods_consumed || []).join(", "), c.patient_count, c.status]; }));
        el("content").innerHTML = html;
        chart("c1", "bar", daily.map(function (p) { return p.date; }), [{ label: "Patients", data: daily.map(function (p) { return p.cases; }) }]);
        chart("c2", "bar", labels(v.symptoms), [{ label: "Symptoms", data: totals(v.symptoms) }]);
        break;
      case "trends":
        var weekly = v.weekly || [];
        html = '<div class="cards">' + card("Patients", v.total_patients) + '</div><div class="charts">' + canvas("c1") + canvas("c2") + canvas("c3") + canvas("c4") + '</div>';
        el("content").innerHTML = html;
        chart("c1", "line", daily.map(function (p) { return p.date; }), [
          { label: "Patients", data: daily.map(function (p) { return p.cases; }) },
          { label: "7 day average", data: daily.map(function (p) { return p.moving_average; }) }]);
        chart("c2", "bar", weekly.map(function (p) { return p.date; }), [{ label: "Weekly", data: weekly.map(function (p) { return p.cases; }) }]);
        chart("c3", "pie", labels(v.top_symptoms), [{ data: totals(v.top_symptoms) }]);
        chart("c4", "bar", labels(v.top_cities), [{ label: "Cities", data: totals(v.top_cities) }]);
        break;
      case "locations":
        html = '<div class="cards">' + card("Establishments", v.stats.total) + card("Located", v.stats.with_location) + card("States", v.stats.distinct_states) + card("Cities", v.stats.distinct_cities) + '</div>' +
          table(["Name", "Address", "City", "State", "Postal code"], (v.establishments || []).map(function (e) { return [e.name, e.address, e.city, e.state, e.postal_code]; }));
        el("content").innerHTML = html;
        break;
      case "map":
        el("content").innerHTML = '<div id="map"></div>';
        map = L.map("map").setView([39.8, -98.6], 4);
        L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", { attribution: "OpenStreetMap" }).addTo(map);
        (v.markers || []).forEach(function (m) {
          L.circleMarker([m.location.latitude, m.location.longitude], { color: m.color, radius: 6 + Math.min(m.case_count, 20) })
            .bindPopup(esc(m.name) + "<br>" + esc(m.city) + ", " + esc(m.state) + "<br>" + m.case_count + " cases").addTo(map);
        });
        break;
      }
    }

    function pollProgress() {
      fetch("/api/analyze/progress").then(function (r) { return r.json(); }).then(function (p) {
        el("progress").style.display = p.visible ? "" : "none";
        el("progress").querySelector("progress").value = p.progress;
        el("progress").querySelector("span").textContent = p.progress + "%";
        if (p.visible || p.running) { setTimeout(pollProgress, 250); }
      });
    }

    el("analyze").onclick = function () {
      el("analyze").disabled = true;
      setTimeout(pollProgress, 100);
      fetch("/api/analyze", { method: "POST" }).then(function (r) {
        return r.json().then(function (body) {
          if (!r.ok) { toast({ title: "Analysis", description: body.message }); return; }
          toast(body.toast);
          select("alerts");
        });
      }).catch(function () { toast({ title: "Error", description: "Failed to connect to analysis server." }); })
        .finally(function () { el("analyze").disabled = false; });
    };

    el("range").onchange = function () { state.range = this.value; renderNav(); load(); };
    el("q").oninput = function () { state.q = this.value; renderNav(); load(); };
    el("category").onchange = function () { state.category = this.value; renderNav(); load(); };
    el("order").onchange = function () { state.order = this.value; load(); };

    renderNav();
    load();
    connect();
  </script>
</body>
</html>`

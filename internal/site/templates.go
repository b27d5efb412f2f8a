package site

// pageTemplate is the gallery shell. Cards, buttons and the palette are
// filled in by main.wasm at load time.
const pageTemplate = `<!DOCTYPE html>
<html lang="en"
  data-theme-strategy="{{.Page.ThemeStrategy}}"
  data-theme-default="{{.Page.ThemeDefault}}"
  data-theme-store="{{.Page.ThemeStore}}"
  data-storage-key="{{.Page.StorageKey}}"
  data-tilt-max="{{.Page.TiltMax}}"
  data-data-paths="{{.Page.DataPaths}}"
  {{- if .Page.Reload}} data-reload="true"{{end}}>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  {{- if .Description}}
  <meta name="description" content="{{.Description}}">
  {{- end}}
  <link rel="stylesheet" href="theme.css">
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header class="site-header">
    <h1>{{.Title}}</h1>
    {{- if .Description}}
    <p class="site-description">{{.Description}}</p>
    {{- end}}
  </header>

  <section class="controls">
    <input type="text" id="search-input" placeholder="Search projects..." autocomplete="off">
    <div class="filter-group">
      <span class="filter-label">Category</span>
      <div id="category-filters" class="filter-buttons"></div>
    </div>
    <div class="filter-group">
      <span class="filter-label">Type</span>
      <div id="type-filters" class="filter-buttons"></div>
    </div>
  </section>

  <main id="projects-container" class="projects-grid">
    <noscript><div class="empty-state"><h3>This gallery needs JavaScript and WebAssembly.</h3></div></noscript>
  </main>

  <div id="theme-indicator" title="Theme: {{.Page.ThemeDefault}}">
    <div class="theme-dot"></div>
    <div class="theme-tooltip">Click to change theme</div>
  </div>

  {{- if .Wasm}}
  <script src="wasm_exec.js"></script>
  <script src="boot.js"></script>
  {{- end}}
</body>
</html>
`

// bootScript starts main.wasm once wasm_exec.js has defined Go.
const bootScript = `(function () {
  if (!window.Go || !("WebAssembly" in window)) {
    return;
  }
  var go = new Go();
  var load = WebAssembly.instantiateStreaming
    ? WebAssembly.instantiateStreaming(fetch("main.wasm"), go.importObject)
    : fetch("main.wasm")
        .then(function (r) { return r.arrayBuffer(); })
        .then(function (b) { return WebAssembly.instantiate(b, go.importObject); });
  load
    .then(function (result) { go.run(result.instance); })
    .catch(function (err) { console.error("folio: loading main.wasm failed", err); });
})();
`

const cssContent = `/* ============ Base ============ */
*, *::before, *::after { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--theme-bg-primary);
  color: var(--theme-text-primary);
  transition: background 0.3s ease, color 0.3s ease;
}

body::after {
  content: "";
  position: fixed;
  inset: 0;
  pointer-events: none;
  background: repeating-linear-gradient(0deg, rgba(0, 0, 0, 0.15) 0 1px, transparent 1px 3px);
  opacity: var(--theme-scan-opacity, 0);
}

.site-header {
  padding: 48px 24px 16px;
  text-align: center;
}

.site-header h1 { margin: 0 0 8px; }

.site-description { color: var(--theme-text-secondary); margin: 0; }

/* ============ Controls ============ */
.controls {
  max-width: 1100px;
  margin: 0 auto;
  padding: 0 24px 24px;
  display: flex;
  flex-direction: column;
  gap: 12px;
}

#search-input {
  width: 100%;
  padding: 10px 14px;
  font-size: 16px;
  border: 2px solid var(--theme-border);
  border-radius: 6px;
  background: var(--theme-card-bg);
  color: var(--theme-text-primary);
}

.filter-group { display: flex; flex-wrap: wrap; align-items: center; gap: 8px; }

.filter-label { font-weight: 600; min-width: 80px; color: var(--theme-text-secondary); }

.filter-buttons { display: flex; flex-wrap: wrap; gap: 6px; }

.filter-btn {
  padding: 6px 12px;
  border: 1px solid var(--theme-border);
  border-radius: 4px;
  background: var(--theme-filter-bg);
  color: var(--theme-text-primary);
  cursor: pointer;
  transition: background 0.2s ease;
}

.filter-btn:hover { background: var(--theme-filter-hover); }

.filter-btn.active {
  background: var(--theme-accent);
  color: var(--theme-bg-primary);
  border-color: var(--theme-accent);
}

/* ============ Cards ============ */
.projects-grid {
  max-width: 1100px;
  margin: 0 auto;
  padding: 0 24px 48px;
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
  gap: 24px;
}

.project-card {
  background: var(--theme-card-bg);
  border: 1px solid var(--theme-border);
  border-radius: 8px;
  overflow: hidden;
  box-shadow: 0 4px 12px var(--theme-shadow);
  transition: box-shadow 0.2s ease;
}

.project-card:hover { box-shadow: 0 8px 24px var(--theme-shadow); }

.project-image {
  height: 180px;
  background-size: cover;
  background-position: center;
}

.project-content { padding: 16px; }

.project-title { margin: 0 0 8px; }

.project-description { color: var(--theme-text-secondary); }

.project-description pre { overflow-x: auto; padding: 8px; border-radius: 4px; }

.project-meta { display: flex; flex-wrap: wrap; gap: 6px; margin: 12px 0; }

.project-tag {
  font-size: 12px;
  padding: 2px 8px;
  border-radius: 10px;
  background: var(--theme-tag-bg);
}

.project-link {
  color: var(--theme-accent);
  word-break: break-all;
}

.project-link:hover { color: var(--theme-accent-hover); }

.empty-state {
  grid-column: 1 / -1;
  text-align: center;
  padding: 48px 0;
  color: var(--theme-text-secondary);
}

/* ============ Theme indicator ============ */
#theme-indicator {
  position: fixed;
  top: 20px;
  right: 20px;
  width: 40px;
  height: 40px;
  border-radius: 50%;
  background: var(--theme-accent);
  cursor: pointer;
  z-index: 1000;
  display: flex;
  align-items: center;
  justify-content: center;
  box-shadow: 0 2px 10px var(--theme-shadow);
  transition: all 0.3s ease;
}

#theme-indicator:hover {
  transform: scale(1.1);
  box-shadow: 0 4px 20px var(--theme-shadow);
}

.theme-dot {
  width: 16px;
  height: 16px;
  border-radius: 50%;
  background: var(--theme-bg-secondary);
  transition: all 0.3s ease;
}

.theme-tooltip {
  position: absolute;
  top: -35px;
  right: 0;
  background: var(--theme-text-primary);
  color: var(--theme-bg-secondary);
  padding: 5px 10px;
  border-radius: 4px;
  font-size: 12px;
  white-space: nowrap;
  opacity: 0;
  pointer-events: none;
  transition: opacity 0.3s ease;
}

#theme-indicator:hover .theme-tooltip { opacity: 1; }

@media (max-width: 768px) {
  #theme-indicator { width: 35px; height: 35px; top: 15px; right: 15px; }
  .theme-dot { width: 14px; height: 14px; }
  .projects-grid { grid-template-columns: 1fr; }
}
`

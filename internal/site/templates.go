package site

// pageTemplate is the Go html/template shell shared by the projects page
// and the markdown info pages.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}{{if not .IsIndex}} — {{.SiteTitle}}{{end}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header class="site-header">
    <h1>{{.SiteTitle}} {{.Year}}</h1>
    {{if .Description}}<p class="site-description">{{.Description}}</p>{{end}}
  </header>
  <main class="content">
{{if .IsIndex}}
    <div class="search-bar">
      <input type="text" id="project-search" placeholder="Search projects..." autocomplete="off">
    </div>
    <div id="loading-indicator" class="loading-indicator">Loading projects…</div>
    <div id="projects-container" class="projects-grid">
{{.Grid}}
    </div>
{{else}}
    <article class="page-content">
{{.Content}}
    </article>
{{end}}
  </main>
  <footer class="site-footer">
    <p>{{.SiteTitle}} {{.Year}}</p>
  </footer>
  <script src="cards.js"></script>
</body>
</html>`

// cssContent is the stylesheet written next to the generated pages.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-card: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --error: #e03131;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

.site-header {
  padding: 2rem 1.5rem;
  border-bottom: 1px solid var(--border);
  text-align: center;
}

.site-header h1 { margin: 0; }
.site-description { color: var(--text-muted); margin: 0.5rem 0 0; }

.content {
  max-width: 1100px;
  margin: 0 auto;
  padding: 1.5rem;
}

.search-bar { margin-bottom: 1.5rem; }

#project-search {
  width: 100%;
  padding: 0.6rem 0.9rem;
  font-size: 1rem;
  border: 1px solid var(--border);
  border-radius: 6px;
}

.loading-indicator {
  text-align: center;
  color: var(--text-muted);
  padding: 2rem;
}

.projects-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
  gap: 1.25rem;
}

.project-card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  box-shadow: var(--shadow);
  display: flex;
  flex-direction: column;
}

.project-card.expanded {
  border-color: var(--accent);
  box-shadow: var(--shadow-lg);
}

.project-image {
  width: 100%;
  height: 160px;
  object-fit: cover;
  border-radius: 6px;
}

.project-title { margin: 0.75rem 0 0.25rem; }
.project-leaders, .project-collaborators {
  margin: 0.25rem 0;
  font-size: 0.9rem;
  color: var(--text-muted);
}

.toggle-details {
  margin-top: auto;
  align-self: flex-start;
  padding: 0.45rem 0.9rem;
  border: none;
  border-radius: 6px;
  background: var(--accent);
  color: #fff;
  cursor: pointer;
}

.toggle-details:hover { background: var(--accent-hover); }

.project-details {
  grid-column: 1 / -1;
  position: relative;
  background: var(--bg-card);
  border: 1px solid var(--accent);
  border-radius: 8px;
  padding: 1.25rem 1.5rem;
  box-shadow: var(--shadow-lg);
}

.project-details[hidden] { display: none; }

.close-details {
  position: absolute;
  top: 0.75rem;
  right: 1rem;
  border: none;
  background: none;
  font-size: 1.4rem;
  color: var(--text-muted);
  cursor: pointer;
}

.details-meta {
  display: grid;
  grid-template-columns: auto 1fr;
  gap: 0.25rem 1rem;
  margin: 1rem 0;
}

.details-meta dt { font-weight: 600; }
.details-meta dd { margin: 0; }

.details-links h4, .details-section h4 { margin: 1rem 0 0.5rem; }

.link-button {
  display: inline-block;
  margin: 0 0.5rem 0.5rem 0;
  padding: 0.35rem 0.8rem;
  border: 1px solid var(--accent);
  border-radius: 6px;
  color: var(--accent);
  text-decoration: none;
  font-size: 0.9rem;
}

.link-button:hover { background: var(--accent); color: #fff; }

.info-block {
  grid-column: 1 / -1;
  text-align: center;
  padding: 2.5rem 1.5rem;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--bg-card);
}

.info-block.error-state { border-color: var(--error); }
.info-block h3 { margin-top: 0; }

.site-footer {
  margin-top: 3rem;
  padding: 1.5rem;
  border-top: 1px solid var(--border);
  text-align: center;
  color: var(--text-muted);
  font-size: 0.9rem;
}

.hidden { display: none !important; }
`

// jsContent is the browser-side card behavior. It mirrors the single-open
// rule modeled in the panel package: opening a details panel closes any
// other open panel, then scrolls the panel near the top of the viewport
// after a short delay.
const jsContent = `(function () {
  'use strict';

  var SCROLL_DELAY_MS = 100;
  var SCROLL_OFFSET_PX = 80;

  function closePanel(id) {
    var details = document.getElementById('details-' + id);
    var card = document.getElementById('card-' + id);
    if (details) details.hidden = true;
    if (details) details.classList.remove('open');
    if (card) {
      card.classList.remove('expanded');
      var toggle = card.querySelector('.toggle-details');
      if (toggle) toggle.setAttribute('aria-expanded', 'false');
    }
  }

  function openPanel(id) {
    // Single-open rule: close everything else first.
    document.querySelectorAll('.project-details:not([hidden])').forEach(function (el) {
      if (el.dataset.projectId !== id) closePanel(el.dataset.projectId);
    });

    var details = document.getElementById('details-' + id);
    var card = document.getElementById('card-' + id);
    if (!details) return;
    details.hidden = false;
    details.classList.add('open');
    if (card) {
      card.classList.add('expanded');
      var toggle = card.querySelector('.toggle-details');
      if (toggle) toggle.setAttribute('aria-expanded', 'true');
    }

    setTimeout(function () {
      var top = details.getBoundingClientRect().top + window.pageYOffset - SCROLL_OFFSET_PX;
      window.scrollTo({ top: top, behavior: 'smooth' });
    }, SCROLL_DELAY_MS);
  }

  function togglePanel(id) {
    var details = document.getElementById('details-' + id);
    if (!details) return;
    if (details.hidden) {
      openPanel(id);
    } else {
      closePanel(id);
    }
  }

  function wireCards() {
    document.querySelectorAll('.toggle-details').forEach(function (btn) {
      btn.addEventListener('click', function () {
        togglePanel(btn.dataset.projectId);
      });
    });
    document.querySelectorAll('.close-details').forEach(function (btn) {
      btn.addEventListener('click', function () {
        closePanel(btn.dataset.projectId);
      });
    });
  }

  function wireSearch() {
    var input = document.getElementById('project-search');
    if (!input) return;
    input.addEventListener('input', function () {
      var q = input.value.trim().toLowerCase();
      document.querySelectorAll('.project-card').forEach(function (card) {
        var match = q === '' || card.textContent.toLowerCase().indexOf(q) !== -1;
        card.classList.toggle('hidden', !match);
        if (!match) closePanel(card.dataset.projectId);
      });
    });
  }

  function wireLiveReload() {
    // Dev server only; deployed sites never connect.
    if (location.hostname !== 'localhost' && location.hostname !== '127.0.0.1') return;
    try {
      var ws = new WebSocket('ws://' + location.host + '/ws');
      ws.onmessage = function (msg) {
        if (msg.data === 'reload') location.reload();
      };
    } catch (e) {
      // no live reload
    }
  }

  document.addEventListener('DOMContentLoaded', function () {
    var loading = document.getElementById('loading-indicator');
    if (loading) loading.hidden = true;
    wireCards();
    wireSearch();
    wireLiveReload();
  });
})();
`

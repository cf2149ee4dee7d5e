package theme

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/gayoung/portfolio/internal/alert"
)

var stylesheetTmpl = template.Must(template.New("theme.css").Funcs(template.FuncMap{
	"hover": Hover,
}).Parse(`:root {
  --primary-main: {{.Colors.Primary.Main}};
  --primary-light: {{.Colors.Primary.Light}};
  --primary-dark: {{.Colors.Primary.Dark}};
  --primary-hover: {{hover .Colors.Primary.Main}};
  --bg-main: {{.Colors.Background.Main}};
  --bg-light: {{.Colors.Background.Light}};
  --bg-dark: {{.Colors.Background.Dark}};
  --white: {{.Colors.White}};
  --black: {{.Colors.Black}};
  --disabled-contained: {{.Colors.Disabled.Contained}};
  --disabled-outlined: {{.Colors.Disabled.Outlined}};
{{- range .Greys}}
  --grey-{{.Key}}: {{.Value}};
{{- end}}
{{- range .Severities}}
  --alert-{{.Key}}: {{.Value}};
{{- end}}
}

body {
  margin: 0;
  background: var(--bg-main);
  color: var(--grey-100);
  font-family: {{index .Fonts "kr"}};
}
{{range .Variants}}
.typo-{{.Key}} { font-size: {{.Value.Size}}; font-weight: {{.Value.Weight}}; line-height: {{.Value.LineHeight}}; margin: 0; }
{{- end}}

.btn {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  padding: 8px 16px;
  font-size: 16px;
  font-weight: bold;
  border: 2px solid transparent;
  border-radius: {{index .BorderRadius 4}};
  cursor: pointer;
  text-decoration: none;
}
.btn-contained { background-color: var(--btn-bg); color: var(--btn-color); }
.btn-contained:hover { background-color: var(--btn-hover); }
.btn-outlined { background: transparent; border-color: var(--btn-bg); color: var(--btn-color); }
.btn-outlined:hover { border-color: var(--btn-hover); }
.btn-text { background: transparent; color: var(--btn-color); }
.btn:disabled { background-color: var(--disabled-contained); color: var(--disabled-outlined); cursor: not-allowed; }
.btn-outlined:disabled { background: transparent; border-color: var(--disabled-outlined); }

.icon-btn { display: inline-flex; border-radius: 50%; padding: 8px; background: var(--btn-bg); color: var(--btn-color); }
.icon-btn:hover { background: var(--btn-hover); }

.text-field {
  width: 100%;
  box-sizing: border-box;
  padding: 12px;
  border: none;
  border-radius: {{index .BorderRadius 4}};
  background: var(--field-bg, var(--bg-light));
  color: var(--field-color, var(--white));
}

.card { background: var(--bg-light); border-radius: {{index .BorderRadius 20}}; padding: {{index .Spacing "large"}}; }

.progress-bar { background: var(--white); border-radius: {{index .BorderRadius 4}}; overflow: hidden; position: relative; }
.progress-fill { height: 100%; border-radius: {{index .BorderRadius 4}}; transition: width 1.5s cubic-bezier(0.65, 0, 0.35, 1); }

@keyframes skeleton-wave {
  from { background-position: 200% 0; }
  to { background-position: -200% 0; }
}
.skeleton {
  background: linear-gradient(90deg, var(--bg-light), {{hover .Colors.Background.Light}}, var(--bg-light));
  background-size: 200% 100%;
  animation: skeleton-wave 1.6s linear infinite;
}

.lazy-image { position: relative; display: inline-block; max-width: 100%; }
.lazy-image img { display: block; width: 100%; height: 100%; object-fit: cover; opacity: 0; transition: opacity 0.3s ease-in; }
.lazy-image .skeleton { position: absolute; inset: 0; }
.lazy-image.loaded img { opacity: 1; }
.lazy-image.loaded .skeleton { display: none; }

@keyframes text-flip {
  0% { margin-top: -150px; }
  5% { margin-top: -100px; }
  33% { margin-top: -100px; }
  38% { margin-top: -50px; }
  66% { margin-top: -50px; }
  71% { margin-top: 0px; }
  99.99% { margin-top: 0px; }
  100% { margin-top: -150px; }
}
.flip { height: 50px; overflow: hidden; }
.flip > * { width: 100%; height: 100%; line-height: 45px; }
.flip > :nth-child(1) { background-color: var(--primary-dark); animation: text-flip 5s linear infinite; }
.flip > :nth-child(2) { background-color: var(--primary-light); }
.flip > :nth-child(3) { background-color: var(--primary-main); }

.slider { position: relative; width: 100%; }
.slider-track {
  display: flex;
  gap: var(--slide-gap, 20px);
  overflow-x: auto;
  scroll-snap-type: x mandatory;
  scroll-behavior: smooth;
  scrollbar-width: none;
}
.slider-track::-webkit-scrollbar { display: none; }
.slider-slide {
  flex: 0 0 calc((100% - (var(--slides-per-view, 4) - 1) * var(--slide-gap, 20px)) / var(--slides-per-view, 4));
  scroll-snap-align: var(--slide-align, start);
  display: flex;
  flex-direction: column;
  justify-content: center;
}
.slider-btn {
  position: absolute;
  top: 50%;
  z-index: 1;
  width: 40px;
  height: 40px;
  border: none;
  border-radius: 50%;
  display: inline-flex;
  align-items: center;
  justify-content: center;
  color: var(--grey-200);
  background-color: var(--grey-600);
  cursor: pointer;
  opacity: 0;
  transform: translateY(-50%) scale(0.8);
  transition: transform 0.5s ease-in, opacity 0.7s cubic-bezier(0.15, 0, 0.2, 1) 0.1s;
}
.slider:hover .slider-btn { opacity: 1; transform: translateY(-50%) scale(1); }
.slider-btn:disabled { visibility: hidden; }
.slider-prev { left: 0; }
.slider-next { right: 0; }

.alert-stack {
  position: fixed;
  top: 10px;
  left: 50%;
  transform: translateX(-50%);
  width: 400px;
  z-index: 1000;
  display: flex;
  flex-direction: column;
  gap: 10px;
}
.alert {
  display: flex;
  align-items: center;
  justify-content: space-between;
  color: var(--white);
  border-radius: {{index .BorderRadius 4}};
  padding: 10px 16px;
}
{{- range .Severities}}
.alert-{{.Key}} { background-color: {{.Value}}; }
{{- end}}

@media {{index .Media "mobile"}} {
  .alert-stack { width: 90%; }
  .slider-slide { flex-basis: 80%; }
  .typo-h1 { font-size: 1.5rem; line-height: 2rem; }
}
`))

type kv[K any, V any] struct {
	Key   K
	Value V
}

// Stylesheet renders the site-wide CSS for t.
func (t Theme) Stylesheet() (string, error) {
	greys := make([]kv[int, string], 0, len(t.Colors.Grey))
	for k, v := range t.Colors.Grey {
		greys = append(greys, kv[int, string]{k, v})
	}
	sort.Slice(greys, func(i, j int) bool { return greys[i].Key < greys[j].Key })

	severities := make([]kv[alert.Severity, string], 0, len(alert.Severities))
	for _, s := range alert.Severities {
		severities = append(severities, kv[alert.Severity, string]{s, t.SeverityColor(s)})
	}

	variants := make([]kv[string, Font], 0, len(t.Typography))
	for k, v := range t.Typography {
		variants = append(variants, kv[string, Font]{k, v})
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i].Key < variants[j].Key })

	data := struct {
		Theme
		Greys      []kv[int, string]
		Severities []kv[alert.Severity, string]
		Variants   []kv[string, Font]
	}{t, greys, severities, variants}

	var buf bytes.Buffer
	if err := stylesheetTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render stylesheet: %w", err)
	}
	return buf.String(), nil
}

// SPDX-License-Identifier: MIT
package handlers

const (
	// Page chrome
	ColorBgPrimary   = "#0F1115" // Near-black background
	ColorBgCard      = "#181B21" // Panel
	ColorTextPrimary = "#E8EAED" // Light text
	ColorTextSecond  = "#9AA0A6" // Muted text
	ColorAccent      = "#4D96FF" // Azure accent
	ColorDanger      = "#FF4D4D" // Remove buttons
	ColorBorder      = "#2A2E36" // Subtle border
)

// Returns the page stylesheet with CSS variables and base styles
func GetDesignSystemCSS() string {
	return `
:root {
	--color-bg-primary: ` + ColorBgPrimary + `;
	--color-bg-card: ` + ColorBgCard + `;
	--color-text-primary: ` + ColorTextPrimary + `;
	--color-text-secondary: ` + ColorTextSecond + `;
	--color-accent: ` + ColorAccent + `;
	--color-danger: ` + ColorDanger + `;
	--color-border: ` + ColorBorder + `;
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--font-mono: ui-monospace, "SF Mono", Menlo, monospace;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-md: 24px;
	--radius-base: 6px;
	--shadow-md: 0 2px 8px rgba(0, 0, 0, 0.4);
}

* { box-sizing: border-box; }

body {
	font-family: var(--font-family);
	background: var(--color-bg-primary);
	color: var(--color-text-primary);
	margin: 0;
	padding: 0;
	line-height: 1.5;
}

h1 { font-size: 24px; font-weight: 700; margin: 0; }
h2 { font-size: 16px; font-weight: 600; margin: 0 0 var(--spacing-sm); }
small { font-size: 12px; color: var(--color-text-secondary); }
code { font-family: var(--font-mono); }

button {
	background: var(--color-accent);
	color: #fff;
	border: none;
	border-radius: var(--radius-base);
	padding: 6px 12px;
	font-size: 14px;
	cursor: pointer;
}
button:hover { opacity: 0.9; }
button.btn-danger { background: var(--color-danger); }
button.btn-plain { background: transparent; padding: 0; }

input {
	background: var(--color-bg-primary);
	color: var(--color-text-primary);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-base);
	padding: 6px 8px;
	font-size: 14px;
}

form { display: inline; margin: 0; }

.layout {
	display: grid;
	grid-template-columns: 1fr 300px;
	gap: var(--spacing-md);
	max-width: 1200px;
	margin: 0 auto;
	padding: var(--spacing-md);
}

.card {
	background: var(--color-bg-card);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-base);
	padding: var(--spacing-base);
	margin-bottom: var(--spacing-base);
}

.preview {
	height: 420px;
	border-radius: var(--radius-base);
	box-shadow: var(--shadow-md);
	display: flex;
	align-items: flex-end;
	padding: var(--spacing-base);
}

.toolbar { display: flex; flex-wrap: wrap; gap: var(--spacing-sm); align-items: center; margin: var(--spacing-base) 0; }

.css-output {
	font-family: var(--font-mono);
	background: var(--color-bg-primary);
	padding: var(--spacing-sm);
	border-radius: var(--radius-base);
	word-break: break-all;
}

.swatch {
	display: flex;
	justify-content: space-between;
	align-items: center;
	padding: 10px 12px;
	border-radius: var(--radius-base);
	margin-bottom: 6px;
	font-family: var(--font-mono);
}

.chips { display: flex; flex-wrap: wrap; gap: 6px; }
.chip {
	width: 56px;
	height: 28px;
	border-radius: var(--radius-base);
	border: 1px solid var(--color-border);
}

.notice {
	background: var(--color-accent);
	color: #fff;
	padding: var(--spacing-sm) var(--spacing-base);
	border-radius: var(--radius-base);
	margin-bottom: var(--spacing-base);
}
`
}

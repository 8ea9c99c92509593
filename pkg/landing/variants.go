package landing

const minimalVariant = `---
title: "Welcome"
layout: "base"
variant: "minimal"
description: "A single headline and a short intro paragraph."
---

# Welcome

Start editing this page to build your landing page.
`

const heroVariant = `---
title: "Home"
layout: "hero"
variant: "hero"
description: "Full-width hero section with a call to action."
---

# Build something great

A bold opening statement for your product.

[Get started](/start)

## Why us

- Fast to set up
- Generated record components out of the box
- Quick actions wired automatically
`

const dashboardVariant = `---
title: "Records"
layout: "dashboard"
variant: "dashboard"
description: "Entry page linking to generated record components."
---

# Your records

Jump straight into the generated record views:

| Action | Where |
| ------ | ----- |
| View   | src/components/view*Record |
| Edit   | src/components/edit*Record |
| Create | src/components/create*Record |
`

var variants = map[string]string{
	"minimal":   minimalVariant,
	"hero":      heroVariant,
	"dashboard": dashboardVariant,
}

// Package recipe converts the family cookbook markdown into structured recipe records.
//
// # Overview
//
// The cookbook is written in a small fixed dialect: every record opens with a
// "### " heading and carries bolded labels followed by lists and prose:
//
//	### Festive Apple Dip
//	**Contributor:** Jane
//	**Ingredients:**
//	- 1 cup cream cheese
//	- 1/2 cup caramel
//	**Instructions:**
//	1. Mix ingredients
//	2. Chill 1 hour
//	**Notes:** Best served warm.
//
// Anything else is inert content. There is no syntax error condition.
//
// # Pipeline
//
// Parsing runs in four steps, each exposed for testing:
//   - ClassifyLine tags a trimmed line as blank, heading, field label, dash item,
//     numbered item or plain text
//   - the fold threads one state value through the classified lines, opening a
//     record on every heading and closing it on the next heading or end of input
//   - Categorize drops records with no ingredients (family introductions,
//     section titles) and assigns a Category from the ordered Rules table
//   - ValidateCatalog checks the records against the embedded JSON Schema
//     before they are written anywhere
//
// # Usage
//
//	p := recipe.NewParser(recipe.WithContributor("Grandma"))
//	cat, err := p.Parse(f)
//	if err != nil {
//	    return err
//	}
//	if err := recipe.ValidateCatalog(cat); err != nil {
//	    return err
//	}
//	fmt.Printf("%d recipes\n", cat.Count())
//
// # Front Matter
//
// A document may open with a YAML block that overrides the contributor and
// image defaults for that document only:
//
//	---
//	contributor: Grandma Schafer
//	---
//
// # Categories
//
// The category set is closed: Main, Dessert, Side, Dip/Sauce, Bread, Breakfast
// and Snack. Titles matching no rule are Main.
//
// # Metrics
//
// Every parse updates cookbook_records_parsed_total, cookbook_records_dropped_total,
// cookbook_records_by_category_total and cookbook_parse_duration_seconds on the
// default Prometheus registry.
package recipe

package idgen

// BuildTitle produces a gradebook column title for a skill. The SIS
// derives a unique short code from roughly the first ten characters of
// a title, so every strategy here keeps that prefix meaningful: short
// unit-skill pairs are used verbatim, pairs with a short skill token
// get the unit truncated to fit, and everything else gets a hash
// prefix that is unique by construction.
//
// The truncated form accepts a collision risk: two units sharing a
// truncated prefix and skill token produce the same title. That risk
// is deliberate; the readable title is worth more than the guarantee.
func BuildTitle(unit, skill, descriptor string) string {
	core := unit + "-" + skill
	if len(core) < 10 {
		if descriptor != "" {
			return core + ": " + descriptor
		}
		return core
	}

	if len(skill) <= 7 {
		budget := 10 - len(skill) - 1
		short := unit
		if len(short) > budget {
			short = short[:budget]
		}
		return short + "-" + skill
	}

	h := Hash(unit + "|||" + skill)
	for len(h) < 8 {
		h = "0" + h
	}
	full := core
	if descriptor != "" {
		full += ": " + descriptor
	}
	return "[" + h + "] " + full
}

package kb

// defaultArticles is the built-in fallback set used when no external KB file
// is available. External entries override these on key collision.
var defaultArticles = map[string]Article{
	"176": {
		Title: "Constitution of Supreme Court",
		Text: "The Supreme Court shall consist of a Chief Justice, to be known as the Chief Justice of Pakistan, " +
			"and so many other Judges as may be determined by Act of Majlis-e-Shoora (Parliament) or, " +
			"until so determined, as may be fixed by the President.",
		Summary: "Sets the composition of the Supreme Court (CJP + other judges determined by Parliament or temporarily by the President).",
		Examples: []string{
			"Parliament may increase the number of Supreme Court judges to reduce backlog—permitted under Article 176.",
			"Until Parliament fixes a number, the President may set the number of judges.",
		},
		Related: []string{"175", "177", "178"},
	},
	"89": {
		Title: "Power of President to promulgate Ordinances",
		Text: "The President may promulgate an Ordinance when the National Assembly is not in session if satisfied " +
			"that circumstances exist which render it necessary to take immediate action. Ordinances have the force " +
			"of law but must be laid before the Assembly and lapse after set durations unless extended or replaced by Act.",
		Summary: "Allows temporary legislation by the President when NA is not in session, subject to duration/laying/approval rules.",
		Examples: []string{
			"During an urgent fiscal situation while NA is not in session, the President may issue a tax-related Ordinance.",
			"On Assembly resumption, the Ordinance must be laid; if disapproved or time lapses, it ceases to operate.",
		},
		Related: []string{"70", "75", "127", "128"},
	},
	"128": {
		Title: "Power of Governor to promulgate Ordinances",
		Text: "The Governor of a Province may promulgate Ordinances when the Provincial Assembly is not in session, " +
			"subject to conditions similar to those for Presidential Ordinances.",
		Summary: "Provincial analogue of Article 89 for Governors when Provincial Assemblies are not in session.",
		Examples: []string{
			"A provincial public health emergency may be addressed via a Governor's Ordinance pending Assembly session.",
			"If the Provincial Assembly disapproves, the Ordinance ceases.",
		},
		Related: []string{"89", "130"},
	},
	"175": {
		Title:   "Establishment and jurisdiction of courts",
		Text:    "There shall be a Supreme Court of Pakistan, a High Court for each Province, and such other courts as may be established by law.",
		Summary: "Establishes the court system and judicial structure in Pakistan.",
		Examples: []string{
			"Inter-provincial disputes fall within the higher judiciary's constitutional scheme framed by Article 175.",
			"Law students use 175 as the starting point for the hierarchy of courts.",
		},
		Related: []string{"176", "191"},
	},
	"177": {
		Title:   "Appointment of Supreme Court Judges",
		Text:    "(Appointment provisions for the Chief Justice and other judges of the Supreme Court—see full text for detail).",
		Summary: "Covers appointment of the CJP and other Supreme Court judges.",
		Examples: []string{
			"New judges of the Supreme Court are appointed under Article 177.",
			"Bar associations track appointments through Article 177 procedures.",
		},
		Related: []string{"176", "178"},
	},
}

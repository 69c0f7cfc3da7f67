package nlp

import "strings"

// irregularLemmas maps inflected verb forms that the suffix rules would
// mangle to their base form. The list covers auxiliaries plus the verbs that
// dominate organizational prose.
var irregularLemmas = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be", "'s": "be", "'re": "be", "'m": "be",

	"has": "have", "had": "have", "having": "have", "'ve": "have",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"goes": "go", "went": "go", "gone": "go", "going": "go",

	"said": "say", "made": "make", "found": "find", "founded": "found",
	"met": "meet", "led": "lead", "held": "hold", "built": "build",
	"bought": "buy", "brought": "bring", "taught": "teach", "sold": "sell",
	"told": "tell", "paid": "pay", "won": "win", "kept": "keep",
	"left": "leave", "sent": "send", "spent": "spend", "lost": "lose",
	"felt": "feel", "saw": "see", "seen": "see", "knew": "know",
	"known": "know", "came": "come", "gave": "give", "given": "give",
	"wrote": "write", "written": "write", "ran": "run", "took": "take",
	"taken": "take", "got": "get", "gotten": "get", "began": "begin",
	"begun": "begin", "grew": "grow", "grown": "grow", "heard": "hear",
	"chose": "choose", "chosen": "choose", "became": "become",
	"become": "become", "drove": "drive", "driven": "drive",

	"hired": "hire", "hiring": "hire",
	"acquired": "acquire", "acquiring": "acquire",
	"promoted": "promote", "promoting": "promote",
	"supervised": "supervise", "supervising": "supervise",
	"advised": "advise", "advising": "advise",
	"purchased": "purchase", "purchasing": "purchase",
	"used": "use", "using": "use",
	"named": "name", "naming": "name",
	"provided": "provide", "providing": "provide",
	"completed": "complete", "completing": "complete",
	"managed": "manage", "managing": "manage",
	"produced": "produce", "producing": "produce",
	"served": "serve", "serving": "serve",
	"joined": "join", "based": "base", "died": "die",
}

// Lemma reduces a verb form to its base form using an irregular table and
// suffix stripping keyed on the Penn tag. Non-verb tokens are returned
// lowercased unchanged; downstream relation labels are built from the
// result, so a rough stem beats no stem.
func Lemma(text, tag string) string {
	low := strings.ToLower(text)
	if !isVerbTag(tag) && tag != "MD" {
		return low
	}
	if base, ok := irregularLemmas[low]; ok {
		return base
	}

	switch tag {
	case "VBZ":
		switch {
		case len(low) > 4 && strings.HasSuffix(low, "ies"):
			return low[:len(low)-3] + "y"
		case hasESSuffix(low):
			return low[:len(low)-2]
		case strings.HasSuffix(low, "s") && !strings.HasSuffix(low, "ss"):
			return low[:len(low)-1]
		}
	case "VBD", "VBN":
		switch {
		case len(low) > 4 && strings.HasSuffix(low, "ied"):
			return low[:len(low)-3] + "y"
		case strings.HasSuffix(low, "eed"):
			return low[:len(low)-1]
		case strings.HasSuffix(low, "ed"):
			return restoreStem(low[:len(low)-2])
		}
	case "VBG":
		if len(low) > 4 && strings.HasSuffix(low, "ing") {
			return restoreStem(low[:len(low)-3])
		}
	}
	return low
}

// hasESSuffix reports whether the form carries the -es third-person ending
// that follows a sibilant or o stem (watches, goes, fixes).
func hasESSuffix(s string) bool {
	if !strings.HasSuffix(s, "es") || len(s) < 4 {
		return false
	}
	stem := s[:len(s)-2]
	for _, suf := range []string{"s", "x", "z", "ch", "sh", "o"} {
		if strings.HasSuffix(stem, suf) {
			return true
		}
	}
	return false
}

// restoreStem undoes the spelling changes -ed/-ing attachment makes:
// doubled final consonants are collapsed (planned -> plan) and a dropped
// silent e is restored where the stem ending demands one (creat -> create).
func restoreStem(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && isConsonant(stem[n-1]) &&
		!strings.ContainsRune("lszf", rune(stem[n-1])) {
		return stem[:n-1]
	}
	if strings.HasSuffix(stem, "at") {
		return stem + "e"
	}
	if n > 0 && strings.ContainsRune("cgvzu", rune(stem[n-1])) {
		return stem + "e"
	}
	return stem
}

func isConsonant(b byte) bool {
	return b >= 'a' && b <= 'z' && !strings.ContainsRune("aeiou", rune(b))
}

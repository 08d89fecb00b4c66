// Package keyboard converts text typed in the wrong keyboard layout.
package keyboard

import "unicode"

// enToRu maps lowercase characters of the English (QWERTY) layout onto the
// Russian (ЙЦУКЕН) characters sitting on the same keys.
var enToRu = map[rune]rune{
	'q': 'й', 'w': 'ц', 'e': 'у', 'r': 'к', 't': 'е', 'y': 'н', 'u': 'г',
	'i': 'ш', 'o': 'щ', 'p': 'з', '[': 'х', ']': 'ъ',
	'a': 'ф', 's': 'ы', 'd': 'в', 'f': 'а', 'g': 'п', 'h': 'р', 'j': 'о',
	'k': 'л', 'l': 'д', ';': 'ж', '\'': 'э',
	'z': 'я', 'x': 'ч', 'c': 'с', 'v': 'м', 'b': 'и', 'n': 'т', 'm': 'ь',
	',': 'б', '.': 'ю',
	'{': 'х', '}': 'ъ', ':': 'ж', '"': 'э', '<': 'б', '>': 'ю',
	' ': ' ',
}

// Convert transliterates s from the English layout into the Russian one,
// character by character. The translation is all-or-nothing: as soon as one
// character has no mapping the original string is returned unchanged, so a
// string already typed in Russian (or mixing layouts) never partially
// converts. Lookup is case-insensitive; the converted result is lowercase.
func Convert(s string) string {
	runes := []rune(s)
	result := make([]rune, len(runes))
	for i, r := range runes {
		mapped, ok := enToRu[unicode.ToLower(r)]
		if !ok {
			return s
		}
		result[i] = mapped
	}
	return string(result)
}

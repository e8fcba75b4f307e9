package astrology

import "time"

// DigitSum suma los dígitos decimales de n (n >= 0). No reduce.
func DigitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// ReduceToDigit aplica DigitSum hasta quedar en un solo dígito.
func ReduceToDigit(n int) int {
	for n > 9 {
		n = DigitSum(n)
	}
	return n
}

// LifePathNumber: suma de dígitos de día, mes y año, reducida a 1..9.
// Sin números maestros (11, 22): siempre se reduce.
func LifePathNumber(d BirthDate) int {
	total := DigitSum(d.Day) + DigitSum(int(d.Month)) + DigitSum(d.Year)
	return ReduceToDigit(total)
}

// PersonalDay es el "día personal" que muestra el dashboard: día del mes mod 9, con 0 => 9.
func PersonalDay(t time.Time) int {
	if n := t.Day() % 9; n != 0 {
		return n
	}
	return 9
}

package astrology

import "time"

// Sign define los doce signos.
// @Enum Aries, Taurus, Gemini, Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces
type Sign string

const (
	SignAries       Sign = "Aries"
	SignTaurus      Sign = "Taurus"
	SignGemini      Sign = "Gemini"
	SignCancer      Sign = "Cancer"
	SignLeo         Sign = "Leo"
	SignVirgo       Sign = "Virgo"
	SignLibra       Sign = "Libra"
	SignScorpio     Sign = "Scorpio"
	SignSagittarius Sign = "Sagittarius"
	SignCapricorn   Sign = "Capricorn"
	SignAquarius    Sign = "Aquarius"
	SignPisces      Sign = "Pisces"
)

// Element agrupa tres signos.
// @Enum Fire, Earth, Air, Water
type Element string

const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

type monthDay struct {
	Month time.Month
	Day   int
}

func (md monthDay) key() int { return int(md.Month)*100 + md.Day }

// SignInfo es una fila de la tabla fija.
type SignInfo struct {
	Sign    Sign
	Symbol  string
	Element Element
	Start   monthDay
	End     monthDay // inclusivo; puede ser anterior a Start (Capricorn cruza el año)
	Label   string
}

func (s SignInfo) contains(m time.Month, day int) bool {
	k := monthDay{Month: m, Day: day}.key()
	start, end := s.Start.key(), s.End.key()
	if start <= end {
		return k >= start && k <= end
	}
	return k >= start || k <= end
}

// resolveOrder es el orden de evaluación: empieza en Aquarius y termina en Capricorn.
var resolveOrder = []SignInfo{
	{SignAquarius, "♒", ElementAir, monthDay{time.January, 20}, monthDay{time.February, 18}, "January 20 - February 18"},
	{SignPisces, "♓", ElementWater, monthDay{time.February, 19}, monthDay{time.March, 20}, "February 19 - March 20"},
	{SignAries, "♈", ElementFire, monthDay{time.March, 21}, monthDay{time.April, 19}, "March 21 - April 19"},
	{SignTaurus, "♉", ElementEarth, monthDay{time.April, 20}, monthDay{time.May, 20}, "April 20 - May 20"},
	{SignGemini, "♊", ElementAir, monthDay{time.May, 21}, monthDay{time.June, 20}, "May 21 - June 20"},
	{SignCancer, "♋", ElementWater, monthDay{time.June, 21}, monthDay{time.July, 22}, "June 21 - July 22"},
	{SignLeo, "♌", ElementFire, monthDay{time.July, 23}, monthDay{time.August, 22}, "July 23 - August 22"},
	{SignVirgo, "♍", ElementEarth, monthDay{time.August, 23}, monthDay{time.September, 22}, "August 23 - September 22"},
	{SignLibra, "♎", ElementAir, monthDay{time.September, 23}, monthDay{time.October, 22}, "September 23 - October 22"},
	{SignScorpio, "♏", ElementWater, monthDay{time.October, 23}, monthDay{time.November, 21}, "October 23 - November 21"},
	{SignSagittarius, "♐", ElementFire, monthDay{time.November, 22}, monthDay{time.December, 21}, "November 22 - December 21"},
	{SignCapricorn, "♑", ElementEarth, monthDay{time.December, 22}, monthDay{time.January, 19}, "December 22 - January 19"},
}

var bySign = func() map[Sign]SignInfo {
	m := make(map[Sign]SignInfo, len(resolveOrder))
	for _, s := range resolveOrder {
		m[s.Sign] = s
	}
	return m
}()

// Reading es el resultado de ResolveZodiac.
type Reading struct {
	Sign    Sign
	Element Element
}

// ResolveZodiac devuelve el primer rango que contiene (mes, día).
// Los rangos particionan el año, el fallback a Capricorn no debería ocurrir.
func ResolveZodiac(d BirthDate) Reading {
	for _, s := range resolveOrder {
		if s.contains(d.Month, d.Day) {
			return Reading{Sign: s.Sign, Element: s.Element}
		}
	}
	return Reading{Sign: SignCapricorn, Element: ElementEarth}
}

// ElementOf devuelve "" si el signo no existe.
func ElementOf(sign Sign) Element {
	return bySign[sign].Element
}

func Lookup(sign Sign) (SignInfo, bool) {
	s, ok := bySign[sign]
	return s, ok
}

// Signs devuelve la tabla en orden de calendario astrológico (Aries primero).
func Signs() []SignInfo {
	out := make([]SignInfo, 0, len(resolveOrder))
	out = append(out, resolveOrder[2:]...)
	out = append(out, resolveOrder[:2]...)
	return out
}

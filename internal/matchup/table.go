package matchup

// Effectiveness multipliers are stored in eighths so that dual-type
// products stay exact: 0 = immune, 4 = half damage, 8 = neutral,
// 16 = double damage. Multiplying two factors and dividing by eight
// keeps the result in eighths with no rounding.
const (
	immune  = 0
	half    = 4
	neutral = 8
	double  = 16
)

// effectiveness maps [attacking][defending] to a multiplier in eighths.
// Rows and columns are indexed by Type in canonical order. Values follow
// the generation VI and later chart (Steel lost its Ghost/Dark resists,
// Fairy exists).
var effectiveness = [NumTypes][NumTypes]uint8{
	//         Nor      Fir      Wat      Ele      Gra      Ice      Fig      Poi      Gro      Fly      Psy      Bug      Roc      Gho      Dra      Dar      Ste      Fai
	Normal:   {neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, half, immune, neutral, neutral, half, neutral},
	Fire:     {neutral, half, half, neutral, double, double, neutral, neutral, neutral, neutral, neutral, double, half, neutral, half, neutral, double, neutral},
	Water:    {neutral, double, half, neutral, half, neutral, neutral, neutral, double, neutral, neutral, neutral, double, neutral, half, neutral, neutral, neutral},
	Electric: {neutral, neutral, double, half, half, neutral, neutral, neutral, immune, double, neutral, neutral, neutral, neutral, half, neutral, neutral, neutral},
	Grass:    {neutral, half, double, neutral, half, neutral, neutral, half, double, half, neutral, half, double, neutral, half, neutral, half, neutral},
	Ice:      {neutral, half, half, neutral, double, half, neutral, neutral, double, double, neutral, neutral, neutral, neutral, double, neutral, half, neutral},
	Fighting: {double, neutral, neutral, neutral, neutral, double, neutral, half, neutral, half, half, half, double, immune, neutral, double, double, half},
	Poison:   {neutral, neutral, neutral, neutral, double, neutral, neutral, half, half, neutral, neutral, neutral, half, half, neutral, neutral, immune, double},
	Ground:   {neutral, double, neutral, double, half, neutral, neutral, double, neutral, immune, neutral, half, double, neutral, neutral, neutral, double, neutral},
	Flying:   {neutral, neutral, neutral, half, double, neutral, double, neutral, neutral, neutral, neutral, double, half, neutral, neutral, neutral, half, neutral},
	Psychic:  {neutral, neutral, neutral, neutral, neutral, neutral, double, double, neutral, neutral, half, neutral, neutral, neutral, neutral, immune, half, neutral},
	Bug:      {neutral, half, neutral, neutral, double, neutral, half, half, neutral, half, double, neutral, neutral, half, neutral, double, half, half},
	Rock:     {neutral, double, neutral, neutral, neutral, double, half, neutral, half, double, neutral, double, neutral, neutral, neutral, neutral, half, neutral},
	Ghost:    {immune, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, double, neutral, neutral, double, neutral, half, neutral, neutral},
	Dragon:   {neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, neutral, double, neutral, half, immune},
	Dark:     {neutral, neutral, neutral, neutral, neutral, neutral, half, neutral, neutral, neutral, double, neutral, neutral, double, neutral, half, neutral, half},
	Steel:    {neutral, half, half, half, neutral, double, neutral, neutral, neutral, neutral, neutral, neutral, double, neutral, neutral, neutral, half, double},
	Fairy:    {neutral, half, neutral, neutral, neutral, neutral, double, half, neutral, neutral, neutral, neutral, neutral, neutral, double, double, half, neutral},
}

// Effectiveness returns the base multiplier, in eighths, for an attack of
// type attacking against a single defender of type defending.
func Effectiveness(attacking, defending Type) uint8 {
	return effectiveness[attacking][defending]
}

package fu

/*
Fnzi returns the first non-zero integer of the arguments and 0 otherwise
*/
func Fnzi(a ...int) int {
	for _, x := range a {
		if x != 0 {
			return x
		}
	}
	return 0
}

/*
Maxi returns the maximum of two integers
*/
func Maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

/*
Mini returns the minimum of two integers
*/
func Mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

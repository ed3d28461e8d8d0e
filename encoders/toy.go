package encoders

//Toy table for sentences like "Mary likes to sing ."
func Mary() *Token {
	t, err := NewTokenFromInts(
		[]string{"Mary", "John", "Lisa", "Andy", "likes", "to", "sing", "dance", "hike", "paint", "climb", "."},
		[][]int{
			{1, 0, 0, 0, 0, 0, 0, 1, 1},
			{0, 1, 0, 0, 0, 0, 0, 1, 1},
			{1, 0, 0, 0, 0, 0, 1, 1, 0},
			{0, 1, 0, 0, 0, 0, 1, 1, 0},
			{0, 0, 1, 0, 0, 0, 0, 1, 1},
			{0, 0, 0, 1, 0, 0, 0, 1, 1},
			{0, 0, 0, 0, 1, 0, 0, 1, 1},
			{0, 0, 0, 0, 1, 0, 1, 1, 0},
			{0, 0, 0, 0, 0, 1, 0, 1, 1},
			{0, 0, 0, 0, 0, 1, 1, 1, 0},
			{0, 0, 0, 0, 1, 0, 1, 1, 0},
			{0, 0, 0, 0, 0, 0, 1, 1, 1},
		})
	if err != nil {
		panic(err)
	}
	return t
}

//Toy table for "Sarah loves music ."
func Sarah() *Token {
	t, err := NewTokenFromInts(
		[]string{"Sarah", "loves", "music", "."},
		[][]int{
			{1, 1, 0, 1, 1, 1, 0, 1, 0, 1},
			{0, 1, 1, 1, 0, 1, 1, 0, 1, 1},
			{1, 1, 1, 0, 0, 1, 0, 1, 1, 1},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		})
	if err != nil {
		panic(err)
	}
	return t
}

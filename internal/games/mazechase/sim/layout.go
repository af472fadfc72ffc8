package sim

// ClassicTunnelRow is the wraparound row of ClassicLayout.
const ClassicTunnelRow = 14

// ClassicLayout returns the 28x31 arcade maze. The ghost house sits in the
// middle behind a two-tile door on row 13.
func ClassicLayout() []string {
	return []string{
		"############################",
		"#............##............#",
		"#.####.#####.##.#####.####.#",
		"#.####.#####.##.#####.####.#",
		"#.####.#####.##.#####.####.#",
		"#..........................#",
		"#.####.##.########.##.####.#",
		"#.####.##.########.##.####.#",
		"#......##....##....##......#",
		"######.#####.##.#####.######",
		"######.#####.##.#####.######",
		"######.##..........##.######",
		"######.##..........##.######",
		"######.##.###--###.##.######",
		"..........#      #..........",
		"######.##.#      #.##.######",
		"######.##.########.##.######",
		"######.##..........##.######",
		"######.##.########.##.######",
		"######.##.########.##.######",
		"#............##............#",
		"#.####.#####.##.#####.####.#",
		"#.####.#####.##.#####.####.#",
		"#...##................##...#",
		"###.##.##.########.##.##.###",
		"###.##.##.########.##.##.###",
		"#......##....##....##......#",
		"#.##########.##.##########.#",
		"#.##########.##.##########.#",
		"#..........................#",
		"############################",
	}
}

// ClassicMajorTiles are the power pellet spots of ClassicLayout.
func ClassicMajorTiles() []Coord {
	return []Coord{C(1, 3), C(26, 3), C(1, 23), C(26, 23)}
}

// ClassicMinorTiles are the speed pellet spots of ClassicLayout.
func ClassicMinorTiles() []Coord {
	return []Coord{C(6, 17), C(21, 17), C(14, 23), C(13, 5)}
}

// ClassicPlayerStart is where the player spawns in ClassicLayout.
var ClassicPlayerStart = C(13, 23)

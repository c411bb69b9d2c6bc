package tilemap

// defaultMaze is the compiled-in 28x31 layout. Two ghost-house doors
// sit on the center column; the cell below each door is the matching
// ghost spawn and stays bare so nobody respawns onto a pellet.
var defaultMaze = []string{
	"1111111111111111111111111111",
	"1322222222222222222222222231",
	"1211112111111211111121111121",
	"1211112111111211111121111121",
	"1212222222222222222222222121",
	"1212112111111211111121112121",
	"1212112111111211111121112121",
	"1212112111111211111121112121",
	"1222222222222222222222222221",
	"1212112112111211112121112121",
	"1212112112111211112121112121",
	"1212112122221H11222221112121",
	"1212222111111011111121222121",
	"1211112111111211111121111121",
	"1211112111111211111121111121",
	"1222222222222222222222222221",
	"1211112111211211121121111121",
	"1211112111211211121121111121",
	"1212112122221211222221112121",
	"1212112112111H11112121112121",
	"1212112112111011112121112121",
	"1212112112111211112121112121",
	"1222222222222222222222222221",
	"1212112111111211111121112121",
	"1212112111111211111121112121",
	"1212112111111211111121112121",
	"1212222222222222222222222121",
	"1211112111111211111121111121",
	"1211112111111211111121111121",
	"1322222222222222222222222231",
	"1111111111111111111111111111",
}

package postgres

type playerTableModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Position string `db:"position"`
	Squad    string `db:"km_res"`
	Active   bool   `db:"active"`
}

type playerInsertModel struct {
	Name     string `db:"name"`
	Position string `db:"position"`
	Squad    string `db:"km_res"`
	Active   bool   `db:"active"`
}

package dal

import (
	"VidTube.com/cmd/interaction/dal/db"
)

func Init() {
	db.Init()
}

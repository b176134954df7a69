package dal

import (
	"VidTube.com/cmd/social/dal/db"
)

func Init() {
	db.Init()
}

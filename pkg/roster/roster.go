// Package roster holds the champion keys champdiff ships with.
//
// The list is the local side of every comparison. It changes only when a
// release adds or renames a champion, and a failing `champdiff compare`
// is the signal to update it.
package roster

import "github.com/agentstation/champdiff/pkg/catalogs"

// keys is the compiled-in champion list. Never mutate it; List copies.
var keys = [...]string{
	"Aatrox", "Ahri", "Akali", "Akshan", "Alistar", "Amumu", "Anivia", "Annie",
	"Aphelios", "Ashe", "AurelionSol", "Aurora", "Azir", "Bard", "Belveth", "Blitzcrank",
	"Brand", "Braum", "Briar", "Caitlyn", "Camille", "Cassiopeia", "Chogath", "Corki",
	"Darius", "Diana", "DrMundo", "Draven", "Ekko", "Elise", "Evelynn", "Ezreal",
	"Fiddlesticks", "Fiora", "Fizz", "Galio", "Gangplank", "Garen", "Gnar", "Gragas",
	"Graves", "Gwen", "Hecarim", "Heimerdinger", "Hwei", "Illaoi", "Irelia", "Ivern",
	"Janna", "JarvanIV", "Jax", "Jayce", "Jhin", "Jinx", "Kaisa", "Kalista",
	"Karma", "Karthus", "Kassadin", "Katarina", "Kayle", "Kayn", "Kennen", "Khazix",
	"Kindred", "Kled", "KogMaw", "Leblanc", "LeeSin", "Leona", "Lillia", "Lissandra",
	"Lucian", "Lulu", "Lux", "Malphite", "Malzahar", "Maokai", "MasterYi", "Milio",
	"MissFortune", "Mordekaiser", "Morgana", "Nami", "Nasus", "Nautilus", "Neeko", "Nidalee",
	"Nilah", "Nocturne", "Nunu", "Olaf", "Orianna", "Ornn", "Pantheon", "Poppy",
	"Pyke", "Qiyana", "Quinn", "Rakan", "Rammus", "RekSai", "Rell", "Renata",
	"Renekton", "Rengar", "Riven", "Rumble", "Ryze", "Samira", "Sejuani", "Senna",
	"Seraphine", "Sett", "Shaco", "Shen", "Shyvana", "Singed", "Sion", "Sivir",
	"Skarner", "Smolder", "Sona", "Soraka", "Swain", "Sylas", "Syndra", "TahmKench",
	"Taliyah", "Talon", "Taric", "Teemo", "Thresh", "Tristana", "Trundle", "Tryndamere",
	"TwistedFate", "Twitch", "Udyr", "Urgot", "Varus", "Vayne", "Veigar", "Velkoz",
	"Vex", "Vi", "Viego", "Viktor", "Vladimir", "Volibear", "Warwick", "MonkeyKing",
	"Xayah", "Xerath", "XinZhao", "Yasuo", "Yone", "Yorick", "Yuumi", "Zac",
	"Zed", "Zeri", "Ziggs", "Zilean", "Zoe", "Zyra",
}

// Provider returns the local key set. It exists so the comparison runner
// can take a fake roster in tests.
type Provider interface {
	List() catalogs.KeySet
}

// Static is the compiled-in roster.
type Static struct{}

// List returns a fresh copy of the compiled-in keys.
func (Static) List() catalogs.KeySet {
	return catalogs.NewKeySet(keys[:]...)
}

// List is shorthand for Static{}.List().
func List() catalogs.KeySet {
	return Static{}.List()
}

// Fixed is a roster backed by an explicit key list.
type Fixed []string

// List returns the keys as a set.
func (f Fixed) List() catalogs.KeySet {
	return catalogs.NewKeySet(f...)
}

package data

import (
	"fmt"
	"strings"

	"github.com/Guismus/DanjonBot/internal/stats"
)

// Adventurer is a player character record.
type Adventurer struct {
	ID     int            `json:"id" yaml:"id"`
	Name   string         `json:"name" yaml:"name"`
	Race   Race           `json:"race" yaml:"race"`
	Rank   string         `json:"rank" yaml:"rank"`
	Level  int            `json:"level" yaml:"level"`
	IV     stats.Variance `json:"iv" yaml:"iv"`
	Jobs   Jobs           `json:"jobs" yaml:"jobs"`
	Energy Energy         `json:"energy" yaml:"energy"`
	Health Health         `json:"health" yaml:"health"`
}

// Race is the race an adventurer is recorded with.
type Race string

const (
	Jiaodan        Race = "Jiaodan"
	JiaodanHumain  Race = "JiaodanHumain"
	JiaodanDragon  Race = "JiaodanDragon"
	Marwoeth       Race = "Marwoeth"
	Demon          Race = "Demon"
	Elfe           Race = "Elfe"
	Ange           Race = "Ange"
	FerosumPassif  Race = "FerosumPassif"
	FerosumExtreme Race = "FerosumExtreme"
	Horya          Race = "Horya"
	Humain         Race = "Humain"
	Gwisin         Race = "Gwisin"
	Stens          Race = "Stens"
)

// NoRace is the baseline key of races that have no baseline of their own.
const NoRace = "None"

// BaselineKey is the name the race is stored under in the race baselines.
// A Jiaodan fights in human form. The two form names are only meaningful as
// baseline keys, so an adventurer recorded with one of them has no baseline.
func (r Race) BaselineKey() string {
	switch r {
	case Jiaodan:
		return string(JiaodanHumain)
	case JiaodanHumain, JiaodanDragon:
		return NoRace
	case FerosumPassif:
		return "Ferosum Passif"
	case FerosumExtreme:
		return "Ferosum Extreme"
	}
	return string(r)
}

// Forms returns the baseline keys of every form of the race.
func (r Race) Forms() []string {
	if r == Jiaodan {
		return []string{string(JiaodanHumain), string(JiaodanDragon)}
	}
	return []string{r.BaselineKey()}
}

func (r Race) String() string { return r.BaselineKey() }

// RaceStats is one entry of the race baselines file.
type RaceStats struct {
	Race           string `json:"race" yaml:"race"`
	stats.Baseline `yaml:",inline"`
}

// Jobs holds the training level of every job.
type Jobs struct {
	AlchimistePharmacien int `json:"alchimiste_pharmacien" yaml:"alchimiste_pharmacien"`
	AlchimisteArtificer  int `json:"alchimiste_artificer" yaml:"alchimiste_artificer"`
	Chevalier            int `json:"chevalier" yaml:"chevalier"`
	Archer               int `json:"archer" yaml:"archer"`
	Combattant           int `json:"combattant" yaml:"combattant"`
	Escarpe              int `json:"escarpe" yaml:"escarpe"`
	Medecin              int `json:"medecin" yaml:"medecin"`
	Dresseur             int `json:"dresseur" yaml:"dresseur"`
	Chasseur             int `json:"chasseur" yaml:"chasseur"`
	Agriculteur          int `json:"agriculteur" yaml:"agriculteur"`
	Couturier            int `json:"couturier" yaml:"couturier"`
	Historien            int `json:"historien" yaml:"historien"`
	Forgeron             int `json:"forgeron" yaml:"forgeron"`
	Cartographe          int `json:"cartographe" yaml:"cartographe"`
	Cuisinier            int `json:"cuisinier" yaml:"cuisinier"`
	Erudit               int `json:"erudit" yaml:"erudit"`
	Musicien             int `json:"musicien" yaml:"musicien"`
	Machiniste           int `json:"machiniste" yaml:"machiniste"`
	Ingenieur            int `json:"ingenieur" yaml:"ingenieur"`
}

// JobLevel is a job name with its training level.
type JobLevel struct {
	Name  string
	Level int
}

func (j JobLevel) String() string { return fmt.Sprintf("%s %d", j.Name, j.Level) }

// Trained lists the jobs with a level above zero, in sheet order.
func (j Jobs) Trained() []JobLevel {
	all := []JobLevel{
		{"Alchimiste pharmacien", j.AlchimistePharmacien},
		{"Alchimiste artificer", j.AlchimisteArtificer},
		{"Chevalier", j.Chevalier},
		{"Archer", j.Archer},
		{"Combattant", j.Combattant},
		{"Escarpe", j.Escarpe},
		{"Medecin", j.Medecin},
		{"Dresseur", j.Dresseur},
		{"Chasseur", j.Chasseur},
		{"Agriculteur", j.Agriculteur},
		{"Couturier", j.Couturier},
		{"Historien", j.Historien},
		{"Forgeron", j.Forgeron},
		{"Cartographe", j.Cartographe},
		{"Cuisinier", j.Cuisinier},
		{"Erudit", j.Erudit},
		{"Musicien", j.Musicien},
		{"Machiniste mécanicien", j.Machiniste},
		{"Machiniste ingénieur", j.Ingenieur},
	}
	var out []JobLevel
	for _, jl := range all {
		if jl.Level > 0 {
			out = append(out, jl)
		}
	}
	return out
}

// Energy holds the physical pool and every magical pool.
type Energy struct {
	Physical Physical `json:"physical" yaml:"physical"`
	Magical  []Magic  `json:"magical" yaml:"magical"`
}

type Physical struct {
	ActualEnergy int `json:"actual_energy" yaml:"actual_energy"`
	Energy       int `json:"energy" yaml:"energy"`
}

type Magic struct {
	Name         string `json:"name" yaml:"name"`
	ActualEnergy int    `json:"actual_energy" yaml:"actual_energy"`
	Energy       int    `json:"energy" yaml:"energy"`
}

func (m Magic) String() string { return fmt.Sprintf("%s %d/%d", m.Name, m.ActualEnergy, m.Energy) }

// Health is the wound state of an adventurer.
type Health struct {
	State       HealthState `json:"state" yaml:"state"`
	Description string      `json:"description" yaml:"description"`
}

type HealthState string

const (
	Aucune    HealthState = "Aucune"
	Important HealthState = "Important"
	DeathDoor HealthState = "DeathDoor"
	Mort      HealthState = "Mort"
)

func (h HealthState) String() string {
	if h == DeathDoor {
		return "Death door"
	}
	return string(h)
}

// Summary renders trained jobs as "Archer 2, Forgeron 1", or "" when none.
func (j Jobs) Summary() string {
	trained := j.Trained()
	parts := make([]string, len(trained))
	for i, jl := range trained {
		parts[i] = jl.String()
	}
	return strings.Join(parts, ", ")
}

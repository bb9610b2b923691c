package directory

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// Store неизменяемый справочник: штаты, города, госпитали, врачи и сетка слотов
// Загружается один раз при старте процесса, после чего только читается,
// поэтому безопасен для конкурентного доступа без блокировок
type Store struct {
	stateNames      []string
	cities          map[string][]string
	hospitals       map[string]map[string][]string
	departmentNames []string
	doctors         map[string][]domain.Doctor
	slots           []string
}

// file структура TOML-файла справочника
type file struct {
	SlotTemplate []string         `toml:"slot_template"`
	States       []stateEntry     `toml:"states"`
	Hospitals    []hospitalEntry  `toml:"hospitals"`
	Departments  []departmentEntry `toml:"departments"`
}

type stateEntry struct {
	Name   string   `toml:"name"`
	Cities []string `toml:"cities"`
}

type hospitalEntry struct {
	State string   `toml:"state"`
	City  string   `toml:"city"`
	Names []string `toml:"names"`
}

type departmentEntry struct {
	Name    string        `toml:"name"`
	Doctors []doctorEntry `toml:"doctors"`
}

type doctorEntry struct {
	Name   string `toml:"name"`
	Timing string `toml:"timing"`
}

// Load читает справочник из TOML-файла
func Load(path string) (*Store, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFile, path, err)
	}

	return build(&f)
}

func build(f *file) (*Store, error) {
	if len(f.SlotTemplate) == 0 {
		return nil, ErrEmptySlotTemplate
	}

	s := &Store{
		stateNames:      make([]string, 0, len(f.States)),
		cities:          make(map[string][]string, len(f.States)),
		hospitals:       make(map[string]map[string][]string),
		departmentNames: make([]string, 0, len(f.Departments)),
		doctors:         make(map[string][]domain.Doctor, len(f.Departments)),
		slots:           append([]string(nil), f.SlotTemplate...),
	}

	for _, st := range f.States {
		s.stateNames = append(s.stateNames, st.Name)
		s.cities[st.Name] = append([]string(nil), st.Cities...)
	}

	for _, h := range f.Hospitals {
		byCity, ok := s.hospitals[h.State]
		if !ok {
			byCity = make(map[string][]string)
			s.hospitals[h.State] = byCity
		}
		byCity[h.City] = append(byCity[h.City], h.Names...)
	}

	for _, dep := range f.Departments {
		s.departmentNames = append(s.departmentNames, dep.Name)
		doctors := make([]domain.Doctor, 0, len(dep.Doctors))
		for _, d := range dep.Doctors {
			doctors = append(doctors, domain.Doctor{Name: d.Name, Timing: d.Timing})
		}
		s.doctors[dep.Name] = doctors
	}

	return s, nil
}

// States возвращает список штатов в порядке объявления в справочнике
func (s *Store) States() []string {
	return append([]string(nil), s.stateNames...)
}

// Cities возвращает города штата
// Неизвестный штат дает пустой список, а не ошибку
func (s *Store) Cities(state string) []string {
	return append([]string(nil), s.cities[state]...)
}

// Hospitals возвращает госпитали в городе штата
// Неизвестная пара (state, city) дает пустой список
func (s *Store) Hospitals(state, city string) []string {
	return append([]string(nil), s.hospitals[state][city]...)
}

// Departments возвращает список отделений в порядке объявления в справочнике
func (s *Store) Departments() []string {
	return append([]string(nil), s.departmentNames...)
}

// Doctors возвращает врачей отделения
// Неизвестное отделение дает пустой список
func (s *Store) Doctors(department string) []domain.Doctor {
	return append([]domain.Doctor(nil), s.doctors[department]...)
}

// SlotTemplate возвращает фиксированную сетку слотов на день
// Сетка одинакова для всех врачей; порядок меток стабилен
func (s *Store) SlotTemplate() []string {
	return append([]string(nil), s.slots...)
}

// DoctorNames возвращает имена всех врачей всех отделений
// Используется при создании учетных записей врачей
func (s *Store) DoctorNames() []string {
	names := make([]string, 0)
	for _, doctors := range s.doctors {
		for _, d := range doctors {
			names = append(names, d.Name)
		}
	}
	return names
}

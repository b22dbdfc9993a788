package seeder

func Defaults() []Seeder {
	return []Seeder{
		UsersSeeder{},
		ProfilesSeeder{},
		CompaniesSeeder{},
		JobsSeeder{},
	}
}

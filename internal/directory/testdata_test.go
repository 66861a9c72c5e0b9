package directory

func fixture() []Official {
	return []Official{
		{Name: "Joe Biden", Office: "President", Party: "Democratic", Level: LevelFederal, State: AllStates},
		{Name: "Kamala Harris", Office: "Vice President", Party: "Democratic", Level: LevelFederal, State: AllStates},
		{Name: "Ted Cruz", Office: "U.S. Senator", Party: "Republican", Level: LevelFederal, State: "Texas"},
		{Name: "Alex Padilla", Office: "U.S. Senator", Party: "Democratic", Level: LevelFederal, State: "California"},
		{Name: "Greg Abbott", Office: "Governor", Party: "Republican", Level: LevelState, State: "Texas"},
		{Name: "Gavin Newsom", Office: "Governor", Party: "Democratic", Level: LevelState, State: "California"},
		{Name: "Karen Bass", Office: "Mayor", Party: "Democratic", Level: LevelLocal, State: "California", City: "Los Angeles"},
		{Name: "Kirk Watson", Office: "Mayor", Party: "Democratic", Level: LevelLocal, State: "Texas", City: "Austin"},
		{Name: "John Whitmire", Office: "Mayor", Party: "Democratic", Level: LevelLocal, State: "Texas", City: "Houston"},
		{Name: "Todd Gloria", Office: "Mayor", Party: "Democratic", Level: LevelLocal, State: "California", City: "San Diego", PhotoURL: "https://example.com/gloria.jpg"},
		{Name: "Kathy Hochul", Office: "Governor", Party: "Democratic", Level: LevelState, State: "New York"},
		{Name: "Sam Liccardo", Office: "Mayor", Party: "Nonpartisan", Level: LevelLocal, State: "California", City: "San Jose"},
	}
}

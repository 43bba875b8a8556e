package catalog

// centers lists nationally known wellness centers and clinical facilities.
var centers = []Center{
	{
		Name:        "Mayo Clinic",
		Description: "Comprehensive medical and mental health services",
		Location:    "Multiple locations across the US",
		Phone:       "1-800-MAYO-CLINIC",
		Website:     "https://www.mayoclinic.org/mental-health",
		SearchURL:   "https://www.google.com/search?q=mayo+clinic+mental+health+services",
		Services:    []string{"Psychiatry", "Psychology", "Therapy", "Counseling", "Addiction treatment"},
	},
	{
		Name:        "Cleveland Clinic Center for Behavioral Health",
		Description: "Comprehensive psychiatric and psychological services",
		Location:    "Cleveland, Ohio and other locations",
		Phone:       "866.588.2264",
		Website:     "https://my.clevelandclinic.org/departments/neurological/depts/behavioral-health",
		SearchURL:   "https://www.google.com/search?q=cleveland+clinic+center+for+behavioral+health",
		Services:    []string{"Psychiatry", "Psychology", "Therapy", "Counseling", "Addiction treatment"},
	},
	{
		Name:        "McLean Hospital",
		Description: "Harvard Medical School Affiliate specializing in psychiatric care",
		Location:    "Belmont, Massachusetts",
		Phone:       "617.855.2000",
		Website:     "https://www.mcleanhospital.org/",
		SearchURL:   "https://www.google.com/search?q=mclean+hospital+mental+health",
		Services:    []string{"Psychiatry", "Psychology", "Therapy", "Research", "Education"},
	},
	{
		Name:        "Hazelden Betty Ford Foundation",
		Description: "Addiction treatment and mental health services",
		Location:    "Multiple locations across the US",
		Phone:       "1-866-831-5700",
		Website:     "https://www.hazeldenbettyford.org/",
		SearchURL:   "https://www.google.com/search?q=hazelden+betty+ford+foundation",
		Services:    []string{"Addiction treatment", "Mental health services", "Recovery support"},
	},
	{
		Name:        "Menninger Clinic",
		Description: "Psychiatric hospital specializing in treatment, research and education",
		Location:    "Houston, Texas",
		Phone:       "713-275-5000",
		Website:     "https://www.menningerclinic.org/",
		SearchURL:   "https://www.google.com/search?q=menninger+clinic",
		Services:    []string{"Psychiatry", "Psychology", "Therapy", "Research"},
	},
	{
		Name:        "Sheppard Pratt",
		Description: "Psychiatric hospital and mental health system",
		Location:    "Baltimore, Maryland",
		Phone:       "410-938-3000",
		Website:     "https://www.sheppardpratt.org/",
		SearchURL:   "https://www.google.com/search?q=sheppard+pratt+mental+health",
		Services:    []string{"Psychiatry", "Psychology", "Therapy", "Counseling"},
	},
	{
		Name:        "Timberline Knolls",
		Description: "Residential treatment center for women and girls",
		Location:    "Lemont, Illinois",
		Phone:       "1-855-254-8326",
		Website:     "https://www.timberlineknolls.com/",
		SearchURL:   "https://www.google.com/search?q=timberline+knolls+treatment+center",
		Services:    []string{"Eating disorders", "Addiction treatment", "Mood disorders", "Trauma recovery"},
	},
	{
		Name:        "Rogers Behavioral Health",
		Description: "Specialized mental health and addiction services",
		Location:    "Multiple locations across the US",
		Phone:       "800-767-4411",
		Website:     "https://rogersbh.org/",
		SearchURL:   "https://www.google.com/search?q=rogers+behavioral+health",
		Services:    []string{"OCD treatment", "Depression treatment", "Anxiety treatment", "Addiction treatment"},
	},
	{
		Name:        "Lindner Center of HOPE",
		Description: "Mental health center offering comprehensive treatment options",
		Location:    "Mason, Ohio",
		Phone:       "513-536-HOPE (4673)",
		Website:     "https://lindnercenterofhope.org/",
		SearchURL:   "https://www.google.com/search?q=lindner+center+of+hope",
		Services:    []string{"Psychiatry", "Psychology", "Research", "Addiction treatment"},
	},
	{
		Name:        "The Meadows",
		Description: "Trauma and addiction treatment center",
		Location:    "Wickenburg, Arizona",
		Phone:       "800-244-4949",
		Website:     "https://www.themeadows.com/",
		SearchURL:   "https://www.google.com/search?q=the+meadows+treatment+center",
		Services:    []string{"Trauma treatment", "Addiction treatment", "Mental health services"},
	},
}

// onlineResources lists remote-first services appended to center replies.
var onlineResources = []Resource{
	{
		Name:        "National Alliance on Mental Illness (NAMI)",
		Description: "Nation's largest grassroots mental health organization",
		Website:     "https://www.nami.org/",
		SearchURL:   "https://www.google.com/search?q=national+alliance+on+mental+illness",
		Services:    []string{"Education", "Advocacy", "Support groups", "Helpline"},
	},
	{
		Name:        "Mental Health America",
		Description: "Community-based nonprofit dedicated to addressing mental health needs",
		Website:     "https://www.mhanational.org/",
		SearchURL:   "https://www.google.com/search?q=mental+health+america",
		Services:    []string{"Screening tools", "Education", "Advocacy", "Support"},
	},
	{
		Name:        "Psychology Today Therapist Finder",
		Description: "Directory to find therapists, psychiatrists, and treatment centers",
		Website:     "https://www.psychologytoday.com/us/therapists",
		SearchURL:   "https://www.google.com/search?q=psychology+today+therapist+finder",
		Services:    []string{"Therapist directory", "Treatment center directory"},
	},
	{
		Name:        "BetterHelp",
		Description: "Online counseling platform",
		Website:     "https://www.betterhelp.com/",
		SearchURL:   "https://www.google.com/search?q=betterhelp+online+therapy",
		Services:    []string{"Online therapy", "Counseling", "Support"},
	},
	{
		Name:        "Talkspace",
		Description: "Online therapy platform",
		Website:     "https://www.talkspace.com/",
		SearchURL:   "https://www.google.com/search?q=talkspace+online+therapy",
		Services:    []string{"Online therapy", "Psychiatry", "Couples therapy"},
	},
}

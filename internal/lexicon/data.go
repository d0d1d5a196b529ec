package lexicon

// defaultCategories returns the built-in occupation catalog. Labels cover
// French, English, and Arabic variants. Short generic labels carry lower
// weights so a single ambiguous token does not dominate detection.
func defaultCategories() []Category {
	return []Category{
		{
			Name: "Cuisine",
			Definitions: []Definition{
				{
					Key:    "cook",
					Weight: 0.9,
					Labels: map[Lang][]string{
						LangFrench:  {"cuisinier", "cuisinière", "cuistot", "chef de partie", "second de cuisine"},
						LangEnglish: {"cook", "line cook"},
						LangArabic:  {"طباخ"},
					},
				},
				{
					Key:    "chef",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"chef de cuisine", "chef cuisinier"},
						LangEnglish: {"head chef", "executive chef"},
						LangArabic:  {"رئيس الطهاة"},
					},
				},
				{
					Key:    "pastry_chef",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"pâtissier", "pâtissière"},
						LangEnglish: {"pastry chef"},
						LangArabic:  {"حلواني"},
					},
				},
				{
					Key:    "baker",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"boulanger", "boulangère"},
						LangEnglish: {"baker"},
						LangArabic:  {"خباز"},
					},
				},
				{
					Key:    "pizzaiolo",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"pizzaïolo", "pizzaiolo"},
						LangEnglish: {"pizza chef"},
					},
				},
				{
					Key:    "commis",
					Weight: 0.6,
					Labels: map[Lang][]string{
						LangFrench:  {"commis de cuisine", "commis"},
						LangEnglish: {"commis chef"},
					},
				},
				{
					Key:    "kitchen_porter",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"plongeur", "plonge"},
						LangEnglish: {"kitchen porter", "dishwasher"},
						LangArabic:  {"عامل مطبخ"},
					},
				},
			},
		},
		{
			Name: "Salle et bar",
			Definitions: []Definition{
				{
					Key:    "server",
					Weight: 0.9,
					Labels: map[Lang][]string{
						LangFrench:  {"serveur", "serveuse", "chef de rang"},
						LangEnglish: {"waiter", "waitress"},
						LangArabic:  {"نادل"},
					},
				},
				{
					Key:    "bartender",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"barman", "barmaid"},
						LangEnglish: {"bartender"},
					},
				},
				{
					Key:    "barista",
					Weight: 0.75,
					Labels: map[Lang][]string{
						LangFrench:  {"barista"},
						LangEnglish: {"barista"},
					},
				},
				{
					Key:    "sommelier",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"sommelier", "sommelière"},
						LangEnglish: {"sommelier"},
					},
				},
				{
					Key:    "maitre_d",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"maître d'hôtel"},
						LangEnglish: {"maitre d"},
					},
				},
				{
					Key:    "host",
					Weight: 0.55,
					Labels: map[Lang][]string{
						LangFrench:  {"hôte d'accueil", "hôtesse d'accueil"},
						LangEnglish: {"host", "hostess"},
					},
				},
				{
					Key:    "runner",
					Weight: 0.5,
					Labels: map[Lang][]string{
						LangFrench:  {"commis de salle", "runner"},
						LangEnglish: {"food runner"},
					},
				},
			},
		},
		{
			Name: "Hôtellerie",
			Definitions: []Definition{
				{
					Key:    "receptionist",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"réceptionniste"},
						LangEnglish: {"receptionist", "front desk agent"},
						LangArabic:  {"موظف استقبال"},
					},
				},
				{
					Key:    "housekeeper",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"femme de chambre", "valet de chambre", "gouvernante"},
						LangEnglish: {"housekeeper", "room attendant"},
					},
				},
				{
					Key:    "night_auditor",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"veilleur de nuit"},
						LangEnglish: {"night auditor"},
					},
				},
				{
					Key:    "porter",
					Weight: 0.6,
					Labels: map[Lang][]string{
						LangFrench:  {"bagagiste", "voiturier"},
						LangEnglish: {"bellboy", "porter"},
					},
				},
			},
		},
		{
			Name: "Bâtiment",
			Definitions: []Definition{
				{
					Key:    "mason",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"maçon"},
						LangEnglish: {"mason", "bricklayer"},
						LangArabic:  {"بناء"},
					},
				},
				{
					Key:    "electrician",
					Weight: 0.9,
					Labels: map[Lang][]string{
						LangFrench:  {"électricien", "électricienne"},
						LangEnglish: {"electrician"},
						LangArabic:  {"كهربائي"},
					},
				},
				{
					Key:    "plumber",
					Weight: 0.9,
					Labels: map[Lang][]string{
						LangFrench:  {"plombier", "plombière"},
						LangEnglish: {"plumber"},
						LangArabic:  {"سباك"},
					},
				},
				{
					Key:    "carpenter",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"menuisier", "charpentier"},
						LangEnglish: {"carpenter", "joiner"},
						LangArabic:  {"نجار"},
					},
				},
				{
					Key:    "painter",
					Weight: 0.7,
					Labels: map[Lang][]string{
						LangFrench:  {"peintre en bâtiment", "peintre"},
						LangEnglish: {"painter", "decorator"},
						LangArabic:  {"دهان"},
					},
				},
				{
					Key:    "tiler",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"carreleur"},
						LangEnglish: {"tiler"},
					},
				},
				{
					Key:    "roofer",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"couvreur"},
						LangEnglish: {"roofer"},
					},
				},
				{
					Key:    "site_laborer",
					Weight: 0.6,
					Labels: map[Lang][]string{
						LangFrench:  {"manœuvre", "ouvrier de chantier"},
						LangEnglish: {"laborer", "site laborer"},
						LangArabic:  {"عامل"},
					},
				},
			},
		},
		{
			Name: "Logistique et transport",
			Definitions: []Definition{
				{
					Key:    "delivery_driver",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"livreur", "livreuse", "chauffeur livreur", "coursier"},
						LangEnglish: {"delivery driver", "courier"},
						LangArabic:  {"سائق توصيل"},
					},
				},
				{
					Key:    "driver",
					Weight: 0.6,
					Labels: map[Lang][]string{
						LangFrench:  {"chauffeur", "conducteur"},
						LangEnglish: {"driver"},
						LangArabic:  {"سائق"},
					},
				},
				{
					Key:    "forklift_operator",
					Weight: 0.9,
					Labels: map[Lang][]string{
						LangFrench:  {"cariste"},
						LangEnglish: {"forklift operator", "forklift driver"},
					},
				},
				{
					Key:    "warehouse_worker",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"magasinier", "manutentionnaire", "préparateur de commandes"},
						LangEnglish: {"warehouse worker", "order picker"},
						LangArabic:  {"عامل مستودع"},
					},
				},
				{
					Key:    "mover",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"déménageur"},
						LangEnglish: {"mover"},
					},
				},
			},
		},
		{
			Name: "Commerce",
			Definitions: []Definition{
				{
					Key:    "sales_assistant",
					Weight: 0.7,
					Labels: map[Lang][]string{
						LangFrench:  {"vendeur", "vendeuse", "conseiller de vente"},
						LangEnglish: {"sales assistant", "shop assistant"},
						LangArabic:  {"بائع"},
					},
				},
				{
					Key:    "cashier",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"caissier", "caissière", "hôte de caisse"},
						LangEnglish: {"cashier"},
						LangArabic:  {"أمين صندوق"},
					},
				},
				{
					Key:    "merchandiser",
					Weight: 0.7,
					Labels: map[Lang][]string{
						LangFrench:  {"employé de rayon", "mise en rayon"},
						LangEnglish: {"merchandiser", "shelf stacker"},
					},
				},
				{
					Key:    "butcher",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"boucher", "bouchère"},
						LangEnglish: {"butcher"},
						LangArabic:  {"جزار"},
					},
				},
				{
					Key:    "fishmonger",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"poissonnier", "poissonnière"},
						LangEnglish: {"fishmonger"},
					},
				},
			},
		},
		{
			Name: "Entretien et sécurité",
			Definitions: []Definition{
				{
					Key:    "cleaner",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"agent d'entretien", "femme de ménage", "agent de propreté"},
						LangEnglish: {"cleaner"},
						LangArabic:  {"عامل نظافة"},
					},
				},
				{
					Key:    "window_cleaner",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"laveur de vitres"},
						LangEnglish: {"window cleaner"},
					},
				},
				{
					Key:    "gardener",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"jardinier", "paysagiste"},
						LangEnglish: {"gardener", "landscaper"},
						LangArabic:  {"بستاني"},
					},
				},
				{
					Key:    "security_guard",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"agent de sécurité", "vigile", "maître-chien"},
						LangEnglish: {"security guard"},
						LangArabic:  {"حارس أمن"},
					},
				},
				{
					Key:    "caretaker",
					Weight: 0.6,
					Labels: map[Lang][]string{
						LangFrench:  {"gardien d'immeuble", "concierge"},
						LangEnglish: {"caretaker", "janitor"},
					},
				},
			},
		},
		{
			Name: "Aide à la personne",
			Definitions: []Definition{
				{
					Key:    "caregiver",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"aide à domicile", "auxiliaire de vie"},
						LangEnglish: {"caregiver", "home aide"},
						LangArabic:  {"مقدم رعاية"},
					},
				},
				{
					Key:    "childminder",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"garde d'enfants", "nounou", "baby-sitter"},
						LangEnglish: {"nanny", "babysitter"},
						LangArabic:  {"جليسة أطفال"},
					},
				},
				{
					Key:    "nurse",
					Weight: 0.9,
					Labels: map[Lang][]string{
						LangFrench:  {"infirmier", "infirmière"},
						LangEnglish: {"nurse"},
						LangArabic:  {"ممرض"},
					},
				},
				{
					Key:    "care_assistant",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"aide-soignant", "aide-soignante"},
						LangEnglish: {"care assistant"},
					},
				},
			},
		},
		{
			Name: "Bureau",
			Definitions: []Definition{
				{
					Key:    "secretary",
					Weight: 0.8,
					Labels: map[Lang][]string{
						LangFrench:  {"secrétaire", "assistant administratif"},
						LangEnglish: {"secretary", "administrative assistant"},
						LangArabic:  {"سكرتير"},
					},
				},
				{
					Key:    "accountant",
					Weight: 0.85,
					Labels: map[Lang][]string{
						LangFrench:  {"comptable"},
						LangEnglish: {"accountant", "bookkeeper"},
						LangArabic:  {"محاسب"},
					},
				},
				{
					Key:    "data_entry",
					Weight: 0.7,
					Labels: map[Lang][]string{
						LangFrench:  {"opérateur de saisie"},
						LangEnglish: {"data entry clerk"},
					},
				},
			},
		},
	}
}

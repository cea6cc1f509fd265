package scene

// DefaultWorld is the built-in mini-campaign: an 80s small town, a drained
// quarry, and a radio tower where a strange signal bleeds through. The graph
// is a short arc with several loops back to the intro; "resolution" is a soft
// terminal that also loops back to start.
func DefaultWorld() *Graph {
	g, err := NewGraph("intro",
		Scene{
			ID:    "intro",
			Title: "Lights Over Ember Grove",
			Desc: "You wake up on the gravel edge of Stillwater Quarry, just outside the town of Ember Grove. " +
				"It's sometime in the late 80s. A walkman lies nearby, quietly hissing static. " +
				"Up on the ridge, the silhouette of an old radio tower flickers with a strange, reddish glow, " +
				"as if the lights are glitching in a pattern that doesn't belong to this world. " +
				"A narrow bike trail leads back toward the sleepy neighborhood to the east. At your feet, half-buried in dust, " +
				"is a small, cracked cassette tape with no label.",
			Choices: []Choice{
				{ID: "inspect_tape", Desc: "Inspect the cracked cassette tape at your feet.", Target: "tape"},
				{ID: "approach_tower", Desc: "Climb the ridge toward the flickering radio tower.", Target: "tower"},
				{ID: "follow_trail_home", Desc: "Follow the bike trail back toward the neighborhood.", Target: "suburbs"},
			},
		},
		Scene{
			ID:    "tape",
			Title: "The Tape",
			Desc: "The cassette shell is cracked, but when you slot it into the walkman and press play, " +
				"the usual music is replaced with distorted whispers and a low hum. Between the static, " +
				"a robotic voice repeats coordinates and the phrase: 'Beneath the tower, the signal bleeds through.' " +
				"As you listen, the lights on the radio tower flash in time with the audio, like something on the other side is listening back.",
			Choices: []Choice{
				{
					ID: "take_tape", Desc: "Pocket the tape and keep the message in mind.", Target: "tower_approach",
					Effects: []Effect{{Kind: EffectJournal, Value: "Found a cursed-feeling cassette: 'Beneath the tower, the signal bleeds through.'"}},
				},
				{ID: "drop_tape", Desc: "Drop the tape and walk away from it.", Target: "intro"},
			},
		},
		Scene{
			ID:    "tower",
			Title: "The Radio Tower",
			Desc: "You climb the ridge and stand beneath the old radio tower. Its metal frame creaks in the wind, " +
				"and the red warning light at the top flickers erratically, sometimes a deep, wrong shade. " +
				"At the base, a metal hatch with a heavy latch covers a maintenance tunnel. You notice fresh footprints in the dust. " +
				"You can try the hatch, circle around the fence, or head back toward the quarry.",
			Choices: []Choice{
				{ID: "try_latch_without_clue", Desc: "Try the metal hatch latch with no clue, just brute force.", Target: "latch_fail"},
				{ID: "circle_fence", Desc: "Circle the perimeter fence for another way in.", Target: "service_gap"},
				{ID: "retreat", Desc: "Head back down toward the quarry.", Target: "intro"},
			},
		},
		Scene{
			ID:    "tower_approach",
			Title: "Signal on the Ridge",
			Desc: "Clutching the strange cassette message in your memory, you reach the radio tower. " +
				"As you step closer to the metal hatch, your walkman hisses and the static rises. " +
				"The pattern in the cassette's message seems to sync with the way the tower's red light pulses.",
			Choices: []Choice{
				{
					ID: "open_hatch", Desc: "Use the cassette clue and carefully work the hatch latch.", Target: "latch_open",
					Effects: []Effect{{Kind: EffectJournal, Value: "Used the cassette clue to open the hatch beneath the tower."}},
				},
				{ID: "circle_fence", Desc: "Look for another entrance around the tower.", Target: "service_gap"},
				{ID: "retreat", Desc: "Return to the quarry edge.", Target: "intro"},
			},
		},
		Scene{
			ID:    "latch_fail",
			Title: "Wrong Frequency",
			Desc: "You yank at the latch without thinking. The metal shrieks, and the tower gives off a single, painful buzz. " +
				"For a moment, the sky above you flickers like an old TV screen switching channels. " +
				"From deep inside the maintenance tunnel, something claws against metal, awake and not happy.",
			Choices: []Choice{
				{ID: "run_away", Desc: "Sprint back down toward the quarry.", Target: "intro"},
				{ID: "stand_ground", Desc: "Stand your ground and brace yourself for whatever crawls out.", Target: "tower_combat"},
			},
		},
		Scene{
			ID:    "latch_open",
			Title: "The Hatch Opens",
			Desc: "With the rhythm of the tape in your mind, you twist the latch in a precise pattern. " +
				"It clicks open with an unnerving, hollow echo. Cool air smelling of ozone and damp earth rushes out. " +
				"A narrow metal ladder leads down into a dim, humming service tunnel where fluorescent lights flicker on and off, " +
				"like the place itself is glitching between worlds.",
			Choices: []Choice{
				{ID: "descend", Desc: "Climb down the ladder into the tunnel.", Target: "tunnel"},
				{ID: "close_hatch", Desc: "Shut the hatch, heart pounding, and reconsider.", Target: "tower_approach"},
			},
		},
		Scene{
			ID:    "service_gap",
			Title: "The Gap in the Fence",
			Desc: "Behind a tangle of overgrown bushes you find a bent section of chain-link fence. " +
				"Someone has carefully cut it and wired it back together for easy access. " +
				"Beyond is a narrow path leading to a side door marked 'AUTHORIZED TECHS ONLY', the paint half-peeled and clawed.",
			Choices: []Choice{
				{ID: "sneak_in", Desc: "Slip through the gap and head for the side door.", Target: "tunnel"},
				{ID: "mark_and_return", Desc: "Make a mental note of the gap and go back toward the quarry.", Target: "intro"},
			},
		},
		Scene{
			ID:    "tunnel",
			Title: "Humming Tunnel",
			Desc: "The maintenance tunnel slopes gently downward. Flickering fluorescent lights buzz overhead, " +
				"and wires run along the walls, some of them pulsing with a faint, unnatural glow. " +
				"You emerge into a small control room: scattered schematics, an old CRT monitor showing static, " +
				"and on a metal desk, a brass key fob and a sealed manila folder that seems to vibrate slightly in your hand.",
			Choices: []Choice{
				{
					ID: "take_key", Desc: "Pick up the brass key fob.", Target: "tunnel_key",
					Effects: []Effect{
						{Kind: EffectInventory, Value: "brass_key_fob"},
						{Kind: EffectJournal, Value: "Found a brass key fob in the tower control room."},
					},
				},
				{
					ID: "open_folder", Desc: "Open the sealed folder and read the contents.", Target: "folder_reveal",
					Effects: []Effect{{Kind: EffectJournal, Value: "File notes: 'Anomaly under Stillwater Quarry. Do not transmit on Channel 7.'"}},
				},
				{ID: "leave_quietly", Desc: "Back out of the tunnel and close the hatch behind you.", Target: "intro"},
			},
		},
		Scene{
			ID:    "tunnel_key",
			Title: "Key to Nowhere",
			Desc: "As you lift the key fob, the CRT monitor flickers from static to an image of the quarry, " +
				"but in the reflection the sky is red and the trees look wrong, like shadows wearing a forest as a mask. " +
				"A distorted voice crackles through unseen speakers: 'Will you seal what was opened?'",
			Choices: []Choice{
				{
					ID: "pledge_help", Desc: "Promise to seal whatever has been opened between the worlds.", Target: "resolution",
					Effects: []Effect{{Kind: EffectJournal, Value: "You pledged to help seal the breach under the quarry."}},
				},
				{
					ID: "refuse", Desc: "Refuse and shove the key fob into your pocket.", Target: "cursed_key",
					Effects: []Effect{{Kind: EffectJournal, Value: "You pocketed the key fob; the air feels heavier around you."}},
				},
			},
		},
		Scene{
			ID:    "folder_reveal",
			Title: "The Folder",
			Desc: "The folder is full of grainy photos: Stillwater Quarry at night, " +
				"strange shapes half-emerging from the mist, and diagrams of overlapping waveforms labeled 'Other Side'. " +
				"One note reads: 'Key fob syncs signal. Only activate with intent to close.'",
			Choices: []Choice{
				{ID: "search_for_key", Desc: "Search the room for the key mentioned in the file.", Target: "tunnel_key"},
				{ID: "leave_quietly", Desc: "Put the folder down and quietly leave the tunnel.", Target: "intro"},
			},
		},
		Scene{
			ID:    "tower_combat",
			Title: "Something Crosses Over",
			Desc: "The hatch buckles and a lank, shadow-soaked creature pulls itself halfway into your world. " +
				"Its outline flickers like bad reception, and its eyes glow with a hungry, pale light. " +
				"You feel the air around you warp, as if both worlds are overlapping for a moment. You have to act fast.",
			Choices: []Choice{
				{ID: "fight", Desc: "Stand your ground and fight the creature.", Target: "fight_win"},
				{ID: "flee", Desc: "Turn and run full-speed back toward the quarry.", Target: "intro"},
			},
		},
		Scene{
			ID:    "fight_win",
			Title: "Static Clears",
			Desc: "You lash out with everything you have: instinct, adrenaline, maybe a bit of luck. " +
				"The creature recoils, its form breaking up into static and shadow before it collapses, " +
				"sliding back through the hatch. The red light on the tower stabilizes to a normal blink. " +
				"On the ground where it fell, you find a small pendant etched with a symbol that matches one in the folder.",
			Choices: []Choice{
				{
					ID: "take_pendant", Desc: "Take the pendant and examine the symbol.", Target: "resolution",
					Effects: []Effect{
						{Kind: EffectInventory, Value: "etched_pendant"},
						{Kind: EffectJournal, Value: "Recovered an etched pendant tied to the anomaly."},
					},
				},
				{ID: "leave_pendant", Desc: "Leave the pendant where it lies and catch your breath.", Target: "intro"},
			},
		},
		Scene{
			ID:    "resolution",
			Title: "Closing the Gap",
			Desc: "For a moment, the quarry, the tower, and the sky all feel like they're layered on top of another world: " +
				"red clouds, twisted trees, and shapes watching from far away. Then, as if a channel has finally been changed, " +
				"the feeling snaps back to normal. The night is just a night again. Maybe the town never knows how close it came, " +
				"but you feel that this little breach is sealed, at least for now.",
			Choices: []Choice{
				{ID: "end_session", Desc: "End the session and walk back toward the neighborhood (conclude mini-arc).", Target: "intro"},
				{ID: "keep_exploring", Desc: "Stay out a little longer, just in case there are more weird signals.", Target: "intro"},
			},
		},
		Scene{
			ID:    "cursed_key",
			Title: "Wrong Kind of Signal",
			Desc: "The brass key fob pulses cold in your pocket. Streetlights in your memory flicker, " +
				"and for a second you see the shadows of the 'Other Side' overlaying the control room. " +
				"You get the sense that the more you ignore this, the easier it will be for something else to step through next time.",
			Choices: []Choice{
				{ID: "seek_redemption", Desc: "Look for a way to make this right and help close the breach.", Target: "resolution"},
				{ID: "ditch_key", Desc: "Try to dump the key fob somewhere and hope the feeling fades.", Target: "intro"},
			},
		},
		Scene{
			ID:    "suburbs",
			Title: "Quiet Streets",
			Desc: "You follow the bike trail back toward the quiet streets of Ember Grove. " +
				"Sprinklers tick in front yards, and most of the houses are dark; it's late. " +
				"But every so often, a porch light flickers in the exact same pattern as the radio tower's red glow. " +
				"Whatever is happening out by the quarry is starting to bleed into town.",
			Choices: []Choice{
				{ID: "go_back_quarry", Desc: "Turn around and head back to the quarry; this is bigger than just a weird night.", Target: "intro"},
				{ID: "watch_lights", Desc: "Stand and watch the flickering lights a little longer.", Target: "intro"},
			},
		},
	)
	if err != nil {
		// The built-in world is compiled-in data; a validation failure here is
		// a programming error, not a runtime condition.
		panic(err)
	}
	return g
}

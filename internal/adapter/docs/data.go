package docs

import "github.com/seu-repo/partassist/internal/domain"

var seedPassages = []domain.Passage{
	{
		Title:         "Installing a Refrigerator Water Inlet Valve",
		DocType:       "installation",
		ApplianceType: "refrigerator",
		Content: "1. Unplug the refrigerator and shut off the water supply.\n" +
			"2. Pull the unit away from the wall and remove the lower rear access panel.\n" +
			"3. Disconnect the water line and the wiring harness from the old valve.\n" +
			"4. Unscrew the valve bracket, swap in the new valve, and reconnect the line and harness.\n" +
			"5. Restore water and power, then run the dispenser until the line is free of air.",
	},
	{
		Title:         "Installing an Ice Maker Assembly",
		DocType:       "installation",
		ApplianceType: "refrigerator",
		Content: "1. Unplug the refrigerator and empty the ice bin.\n" +
			"2. Remove the mounting screws holding the old ice maker to the freezer wall.\n" +
			"3. Unplug the wiring harness behind the unit.\n" +
			"4. Mount the new assembly on the same screws and reconnect the harness.\n" +
			"5. Restore power and allow 24 hours for the first full ice harvest.",
	},
	{
		Title:         "Replacing a Refrigerator Water Filter",
		DocType:       "installation",
		ApplianceType: "refrigerator",
		Content: "1. Locate the filter housing in the upper right corner of the fresh food compartment.\n" +
			"2. Rotate the old filter a quarter turn counterclockwise and pull it out.\n" +
			"3. Remove the caps from the new filter and push it in until it clicks.\n" +
			"4. Rotate clockwise to lock, then flush two gallons of water through the dispenser.",
	},
	{
		Title:         "Installing a Dishwasher Drain Pump",
		DocType:       "installation",
		ApplianceType: "dishwasher",
		Content: "1. Turn off power at the breaker and shut off the water supply.\n" +
			"2. Remove the lower front access panel and disconnect the drain hose.\n" +
			"3. Twist the pump counterclockwise to release it from the sump and unplug the harness.\n" +
			"4. Seat the new pump, twist clockwise to lock, and reconnect hose and harness.\n" +
			"5. Restore power and run a rinse cycle to check for leaks.",
	},
	{
		Title:         "Installing a Dishwasher Heating Element",
		DocType:       "installation",
		ApplianceType: "dishwasher",
		Content: "1. Turn off power at the breaker.\n" +
			"2. Remove the lower dish rack and the spray arm.\n" +
			"3. Under the tub, disconnect the two element wires and unscrew the mounting nuts.\n" +
			"4. Lift the old element out of the tub and seat the new one in the same grommets.\n" +
			"5. Re-tighten the nuts, reconnect the wires, and restore power.",
	},
	{
		Title:         "Installing a Dishwasher Spray Arm",
		DocType:       "installation",
		ApplianceType: "dishwasher",
		Content: "1. Remove the lower dish rack.\n" +
			"2. Twist the old spray arm counterclockwise and lift it off the wash pump hub.\n" +
			"3. Press the new arm onto the hub and twist clockwise until it clicks.\n" +
			"4. Spin the arm by hand to confirm it rotates freely.",
	},
	{
		Title:         "Refrigerator Not Cooling",
		DocType:       "troubleshooting",
		ApplianceType: "refrigerator",
		Content: "Check that the condenser coils under the unit are clean and the condenser fan spins freely. " +
			"Confirm the temperature setting and listen for the compressor. " +
			"If the compressor runs but the cabinet stays warm, the thermostat or the evaporator fan is the usual suspect.",
	},
	{
		Title:         "Ice Maker Not Making Ice",
		DocType:       "troubleshooting",
		ApplianceType: "refrigerator",
		Content: "Make sure the freezer is at or below 0°F and the ice maker's shutoff arm is down. " +
			"Check the water line for kinks and confirm the water inlet valve opens (a faint buzz during fill). " +
			"If water never reaches the mold, replace the inlet valve; if water freezes but never ejects, the ice maker assembly itself has failed.",
	},
	{
		Title:         "Refrigerator Leaking Water",
		DocType:       "troubleshooting",
		ApplianceType: "refrigerator",
		Content: "A blocked defrost drain is the most common cause: clear it with warm water from inside the freezer. " +
			"Also inspect the water filter seating and the inlet valve fittings at the back of the unit.",
	},
	{
		Title:         "Dishwasher Not Draining",
		DocType:       "troubleshooting",
		ApplianceType: "dishwasher",
		Content: "Clear the filter and sump of food debris, then check the drain hose for kinks or a clogged air gap. " +
			"If the hose is clear and the dishwasher still holds water at the end of a cycle, the drain pump is likely seized and should be replaced.",
	},
	{
		Title:         "Dishes Not Drying",
		DocType:       "troubleshooting",
		ApplianceType: "dishwasher",
		Content: "Confirm rinse aid is filled and the heated dry option is selected. " +
			"If dishes stay wet and the tub never feels warm at the end of a cycle, test the heating element for continuity and replace it if the circuit is open.",
	},
	{
		Title:         "Dishwasher Not Cleaning Well",
		DocType:       "troubleshooting",
		ApplianceType: "dishwasher",
		Content: "Check the spray arms for clogged nozzles and make sure they spin freely. " +
			"Verify water temperature reaches 120°F at the sink, and clean the filter assembly. " +
			"Cracked or worn spray arms should be replaced.",
	},
	{
		Title:         "Dishwasher Won't Start",
		DocType:       "troubleshooting",
		ApplianceType: "dishwasher",
		Content: "Confirm the door latches fully; a worn door latch keeps the interlock open and the cycle never begins. " +
			"If the latch clicks but nothing runs, check the control board for a blinking error pattern.",
	},
}
